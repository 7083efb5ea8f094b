package templates

import (
	"strings"
	"testing"
)

func TestRenderer(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data := GoalData{
		UserName:        "Ana",
		GoalTitle:       "Run <100> km",
		AchievedPercent: 45,
		GoalsURL:        "http://localhost:3000/goals",
	}

	t.Run("expired template reports the achieved percent", func(t *testing.T) {
		_, text, err := renderer.Render("goal_expired", data)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(text, "45%") {
			t.Errorf("expected 45%% in text body, got %q", text)
		}
	})

	t.Run("html body escapes the goal title", func(t *testing.T) {
		html, _, err := renderer.Render("goal_completed", data)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if strings.Contains(html, "<100>") {
			t.Error("expected the title to be escaped")
		}
	})

	t.Run("missing name falls back to a greeting", func(t *testing.T) {
		_, text, _ := renderer.Render("goal_completed", GoalData{GoalTitle: "Read"})
		if !strings.HasPrefix(text, "Hi there") {
			t.Errorf("expected generic greeting, got %q", text)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		if _, _, err := renderer.Render("weekly_digest", data); err == nil {
			t.Error("expected an error for an unknown template")
		}
	})
}

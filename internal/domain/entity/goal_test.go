package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := ParseDateKey(value, time.UTC)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", value, err)
	}
	return parsed
}

func TestGoalBoard_AddBigGoal(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("creates a goal with zero progress", func(t *testing.T) {
		board := NewGoalBoard()
		goal, err := board.AddBigGoal("  Read books ", 20, "books", mustDate(t, "2025-12-31"), now)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if goal.Title != "Read books" {
			t.Errorf("expected trimmed title, got %q", goal.Title)
		}
		if goal.CurrentValue != 0 {
			t.Errorf("expected current value 0, got %v", goal.CurrentValue)
		}
		if len(board.Goals) != 1 {
			t.Errorf("expected 1 goal on the board, got %d", len(board.Goals))
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		board := NewGoalBoard()
		_, err := board.AddBigGoal("", 20, "books", mustDate(t, "2025-12-31"), now)
		if !errors.Is(err, domainerror.ErrMissingGoalFields) {
			t.Errorf("expected ErrMissingGoalFields, got %v", err)
		}
		_, err = board.AddBigGoal("Read", 20, "books", time.Time{}, now)
		if !errors.Is(err, domainerror.ErrMissingGoalFields) {
			t.Errorf("expected ErrMissingGoalFields for zero deadline, got %v", err)
		}
	})

	t.Run("rejects a non-positive target", func(t *testing.T) {
		board := NewGoalBoard()
		_, err := board.AddBigGoal("Read", 0, "books", mustDate(t, "2025-12-31"), now)
		if !errors.Is(err, domainerror.ErrInvalidTargetValue) {
			t.Errorf("expected ErrInvalidTargetValue, got %v", err)
		}
	})
}

func TestBigGoal_Progress(t *testing.T) {
	tests := []struct {
		name     string
		target   float64
		current  float64
		expected float64
	}{
		{name: "half way", target: 100, current: 50, expected: 50},
		{name: "overshoot is capped", target: 100, current: 150, expected: 100},
		{name: "zero target", target: 0, current: 10, expected: 0},
		{name: "negative current", target: 10, current: -5, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := &BigGoal{TargetValue: tt.target, CurrentValue: tt.current}
			if got := goal.Progress(); got != tt.expected {
				t.Errorf("expected progress %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGoalBoard_UpdateCurrentValue(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	newBoard := func(t *testing.T) (*GoalBoard, *BigGoal) {
		board := NewGoalBoard()
		goal, err := board.AddBigGoal("Run", 100, "km", mustDate(t, "2025-06-30"), now)
		if err != nil {
			t.Fatalf("failed to add goal: %v", err)
		}
		return board, goal
	}

	t.Run("notifies only when crossing the target", func(t *testing.T) {
		board, goal := newBoard(t)

		_, notification, err := board.UpdateCurrentValue(goal.ID, 60, now)
		if err != nil || notification != nil {
			t.Fatalf("expected no notification below target, got %v (err %v)", notification, err)
		}

		_, notification, err = board.UpdateCurrentValue(goal.ID, 100, now)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if notification == nil {
			t.Fatal("expected completion notification")
		}
		if notification.Kind != NotificationGoalCompleted {
			t.Errorf("expected kind %s, got %s", NotificationGoalCompleted, notification.Kind)
		}
		if notification.AchievedPercent != 100 {
			t.Errorf("expected achieved percent 100, got %d", notification.AchievedPercent)
		}

		// Already at target: no second notification
		_, notification, _ = board.UpdateCurrentValue(goal.ID, 120, now)
		if notification != nil {
			t.Errorf("expected no notification when already complete, got %v", notification)
		}
		if goal.CurrentValue != 120 {
			t.Errorf("expected unclamped current value 120, got %v", goal.CurrentValue)
		}
	})

	t.Run("rejects negative values", func(t *testing.T) {
		board, goal := newBoard(t)
		_, _, err := board.UpdateCurrentValue(goal.ID, -1, now)
		if !errors.Is(err, domainerror.ErrInvalidCurrentValue) {
			t.Errorf("expected ErrInvalidCurrentValue, got %v", err)
		}
	})

	t.Run("unknown goal returns nil", func(t *testing.T) {
		board, _ := newBoard(t)
		goal, notification, err := board.UpdateCurrentValue(uuid.New(), 10, now)
		if goal != nil || notification != nil || err != nil {
			t.Errorf("expected all nil, got %v %v %v", goal, notification, err)
		}
	})
}

func TestGoalBoard_Hierarchy(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	board := NewGoalBoard()
	goal, _ := board.AddBigGoal("Spanish", 100, "lessons", mustDate(t, "2025-09-30"), now)

	monthly, err := board.AddMonthlyGoal(goal.ID, "Unit 1", mustDate(t, "2025-03-31"))
	if err != nil || monthly == nil {
		t.Fatalf("expected monthly goal, got %v (err %v)", monthly, err)
	}
	weekly, err := board.AddWeeklyGoal(monthly.ID, "Vocabulary", mustDate(t, "2025-03-16"))
	if err != nil || weekly == nil {
		t.Fatalf("expected weekly goal, got %v (err %v)", weekly, err)
	}
	first, _ := board.AddDailyTask(weekly.ID, "Flashcards", now)
	second, _ := board.AddDailyTask(weekly.ID, "Listening", now.AddDate(0, 0, 1))

	t.Run("daily tasks are dated to the creation day", func(t *testing.T) {
		if first.Date != "2025-03-10" {
			t.Errorf("expected date 2025-03-10, got %s", first.Date)
		}
	})

	t.Run("weekly progress follows its tasks", func(t *testing.T) {
		if _, ok := board.ToggleDailyTask(first.ID); !ok {
			t.Fatal("expected toggle to find the task")
		}
		if got := weekly.Progress(); got != 50 {
			t.Errorf("expected weekly progress 50, got %v", got)
		}
	})

	t.Run("monthly progress follows its weekly goals", func(t *testing.T) {
		if got := monthly.Progress(); got != 0 {
			t.Errorf("expected monthly progress 0, got %v", got)
		}
		board.ToggleWeeklyGoal(weekly.ID)
		if got := monthly.Progress(); got != 100 {
			t.Errorf("expected monthly progress 100, got %v", got)
		}
	})

	t.Run("today's tasks only include the current day", func(t *testing.T) {
		tasks := board.TodaysTasks(now)
		if len(tasks) != 1 || tasks[0].ID != first.ID {
			t.Errorf("expected only the first task, got %v", tasks)
		}
		tasks = board.TodaysTasks(now.AddDate(0, 0, 1))
		if len(tasks) != 1 || tasks[0].ID != second.ID {
			t.Errorf("expected only the second task, got %v", tasks)
		}
	})

	t.Run("missing parents are reported as nil", func(t *testing.T) {
		monthly, err := board.AddMonthlyGoal(uuid.New(), "Orphan", mustDate(t, "2025-03-31"))
		if monthly != nil || err != nil {
			t.Errorf("expected nil result, got %v (err %v)", monthly, err)
		}
		if _, ok := board.ToggleDailyTask(uuid.New()); ok {
			t.Error("expected toggle of unknown task to report false")
		}
	})

	t.Run("deleting a big goal removes its subtree", func(t *testing.T) {
		if !board.DeleteBigGoal(goal.ID) {
			t.Fatal("expected delete to succeed")
		}
		if len(board.TodaysTasks(now)) != 0 {
			t.Error("expected no tasks after deleting the goal")
		}
	})
}

func TestGoalBoard_Evaluate(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	board := NewGoalBoard()
	expiring, _ := board.AddBigGoal("Short", 10, "pages", mustDate(t, "2025-03-10"), created)
	_, _ = board.AddBigGoal("Long", 10, "pages", mustDate(t, "2025-12-31"), created)
	_, _, _ = board.UpdateCurrentValue(expiring.ID, 4, created)

	t.Run("goal survives its deadline day", func(t *testing.T) {
		notifications := board.Evaluate(time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC))
		if len(notifications) != 0 {
			t.Errorf("expected no notifications, got %d", len(notifications))
		}
		if len(board.Goals) != 2 {
			t.Errorf("expected 2 goals, got %d", len(board.Goals))
		}
	})

	t.Run("expired goal is removed with a notification", func(t *testing.T) {
		notifications := board.Evaluate(time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC))
		if len(notifications) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(notifications))
		}
		if notifications[0].Kind != NotificationGoalExpired {
			t.Errorf("expected kind %s, got %s", NotificationGoalExpired, notifications[0].Kind)
		}
		if notifications[0].AchievedPercent != 40 {
			t.Errorf("expected achieved percent 40, got %d", notifications[0].AchievedPercent)
		}
		if len(board.Goals) != 1 || board.Goals[0].Title != "Long" {
			t.Errorf("expected only the long goal to remain, got %v", board.Goals)
		}
	})
}

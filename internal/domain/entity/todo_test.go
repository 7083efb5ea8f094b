package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input    string
		expected Priority
		wantErr  bool
	}{
		{input: "", expected: PriorityNone},
		{input: "none", expected: PriorityNone},
		{input: "LOW", expected: PriorityLow},
		{input: " medium ", expected: PriorityMedium},
		{input: "high", expected: PriorityHigh},
		{input: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domainerror.ErrInvalidPriority) {
					t.Errorf("expected ErrInvalidPriority, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestTodo_Toggle(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	todo, err := NewTodo("Buy milk", "", "", nil, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if todo.Priority != PriorityNone {
		t.Errorf("expected default priority none, got %s", todo.Priority)
	}

	todo.Toggle(now.Add(time.Hour))
	if !todo.Completed || todo.CompletedAt == nil {
		t.Fatalf("expected completed with timestamp, got %+v", todo)
	}
	if !todo.CompletedAt.Equal(now.Add(time.Hour)) {
		t.Errorf("expected completed at %v, got %v", now.Add(time.Hour), todo.CompletedAt)
	}

	todo.Toggle(now.Add(2 * time.Hour))
	if todo.Completed || todo.CompletedAt != nil {
		t.Errorf("expected reopened todo without timestamp, got %+v", todo)
	}
}

func TestNewTodo_RequiresTitle(t *testing.T) {
	_, err := NewTodo("   ", PriorityLow, "", nil, time.Now())
	if !errors.Is(err, domainerror.ErrMissingTodoTitle) {
		t.Errorf("expected ErrMissingTodoTitle, got %v", err)
	}
}

func TestTodoList(t *testing.T) {
	list := NewTodoList()
	first, _ := NewTodo("First", PriorityNone, "", nil, time.Now())
	second, _ := NewTodo("Second", PriorityNone, "", nil, time.Now())
	list.Add(first)
	list.Add(second)

	if list.Find(second.ID) != second {
		t.Error("expected to find the second todo")
	}
	if list.Find(uuid.New()) != nil {
		t.Error("expected unknown id to return nil")
	}
	if !list.Remove(first.ID) {
		t.Fatal("expected remove to succeed")
	}
	if len(list.Todos) != 1 || list.Todos[0] != second {
		t.Errorf("expected only the second todo to remain, got %v", list.Todos)
	}
}

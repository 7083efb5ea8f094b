package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// Priority labels a todo or schedule item. It is never compared numerically.
type Priority string

const (
	PriorityNone   Priority = "none"
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority normalizes a priority label; the empty string maps to none.
func ParsePriority(value string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(value))) {
	case "", PriorityNone:
		return PriorityNone, nil
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	default:
		return "", domainerror.ErrInvalidPriority
	}
}

// Todo is a single task on the user's todo list.
type Todo struct {
	ID          uuid.UUID
	Title       string
	Completed   bool
	Priority    Priority
	Category    string
	DueDate     *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// NewTodo creates an open todo.
func NewTodo(title string, priority Priority, category string, dueDate *time.Time, now time.Time) (*Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domainerror.ErrMissingTodoTitle
	}
	if priority == "" {
		priority = PriorityNone
	}

	return &Todo{
		ID:        uuid.New(),
		Title:     title,
		Priority:  priority,
		Category:  strings.TrimSpace(category),
		DueDate:   dueDate,
		CreatedAt: now,
	}, nil
}

// Toggle flips completion and stamps or clears CompletedAt.
func (t *Todo) Toggle(now time.Time) {
	t.Completed = !t.Completed
	if t.Completed {
		completedAt := now
		t.CompletedAt = &completedAt
		return
	}
	t.CompletedAt = nil
}

// TodoList is a user's todos in creation order.
type TodoList struct {
	Todos []*Todo
}

// NewTodoList creates an empty list.
func NewTodoList() *TodoList {
	return &TodoList{Todos: []*Todo{}}
}

// Add appends a todo.
func (l *TodoList) Add(todo *Todo) {
	l.Todos = append(l.Todos, todo)
}

// Find returns the todo with the given id, or nil.
func (l *TodoList) Find(id uuid.UUID) *Todo {
	for _, t := range l.Todos {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Remove deletes the todo with the given id.
func (l *TodoList) Remove(id uuid.UUID) bool {
	for i, t := range l.Todos {
		if t.ID == id {
			l.Todos = append(l.Todos[:i], l.Todos[i+1:]...)
			return true
		}
	}
	return false
}

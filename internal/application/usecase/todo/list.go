// Package todo contains todo list use cases.
package todo

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func loadList(ctx context.Context, snapshots adapter.SnapshotRepository, userID uuid.UUID) (*entity.TodoList, error) {
	list, err := snapshots.LoadTodos(ctx, userID)
	if err != nil {
		slog.Error("Failed to load todos", "user_id", userID, "error", err)
		return nil, domainerror.NewSnapshotReadError(err)
	}
	return list, nil
}

func saveList(ctx context.Context, snapshots adapter.SnapshotRepository, userID uuid.UUID, list *entity.TodoList) error {
	if err := snapshots.SaveTodos(ctx, userID, list); err != nil {
		slog.Error("Failed to save todos", "user_id", userID, "error", err)
		return domainerror.NewSnapshotWriteError(err)
	}
	return nil
}

func findTodo(list *entity.TodoList, id uuid.UUID) (*entity.Todo, error) {
	todo := list.Find(id)
	if todo == nil {
		return nil, domainerror.NewTodoError(domainerror.ErrCodeTodoNotFound, "todo not found", domainerror.ErrTodoNotFound)
	}
	return todo, nil
}

func parsePriority(value string) (entity.Priority, error) {
	priority, err := entity.ParsePriority(value)
	if err != nil {
		return "", domainerror.NewTodoError(domainerror.ErrCodeInvalidPriority, err.Error(), err)
	}
	return priority, nil
}

func parseDueDate(value *string, loc *time.Location) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	due, err := entity.ParseDateKey(*value, loc)
	if err != nil {
		return nil, domainerror.NewTodoError(
			domainerror.ErrCodeInvalidTodoDate,
			"invalid due date format, expected YYYY-MM-DD",
			err,
		)
	}
	return &due, nil
}

// ListTodosInput represents the input for listing todos.
type ListTodosInput struct {
	UserID uuid.UUID
}

// ListTodosOutput represents the user's todos in creation order.
type ListTodosOutput struct {
	Todos []*entity.Todo
}

// ListTodosUseCase returns every todo.
type ListTodosUseCase struct {
	snapshots adapter.SnapshotRepository
}

// NewListTodosUseCase creates a new ListTodosUseCase instance.
func NewListTodosUseCase(snapshots adapter.SnapshotRepository) *ListTodosUseCase {
	return &ListTodosUseCase{snapshots: snapshots}
}

// Execute lists the todos.
func (uc *ListTodosUseCase) Execute(ctx context.Context, input ListTodosInput) (*ListTodosOutput, error) {
	list, err := loadList(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListTodosOutput{Todos: list.Todos}, nil
}

package todo

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ToggleTodoInput represents the input for toggling completion.
type ToggleTodoInput struct {
	UserID uuid.UUID
	TodoID uuid.UUID
}

// ToggleTodoOutput represents the toggled todo.
type ToggleTodoOutput struct {
	Todo *entity.Todo
}

// ToggleTodoUseCase flips a todo's completion and its completion timestamp.
type ToggleTodoUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewToggleTodoUseCase creates a new ToggleTodoUseCase instance.
func NewToggleTodoUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *ToggleTodoUseCase {
	return &ToggleTodoUseCase{snapshots: snapshots, clock: clock}
}

// Execute performs the toggle.
func (uc *ToggleTodoUseCase) Execute(ctx context.Context, input ToggleTodoInput) (*ToggleTodoOutput, error) {
	list, err := loadList(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	todo, err := findTodo(list, input.TodoID)
	if err != nil {
		return nil, err
	}
	todo.Toggle(uc.clock.Now())

	if err := saveList(ctx, uc.snapshots, input.UserID, list); err != nil {
		return nil, err
	}
	return &ToggleTodoOutput{Todo: todo}, nil
}

package todo

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CreateTodoInput represents the input for todo creation.
type CreateTodoInput struct {
	UserID   uuid.UUID
	Title    string
	Priority string
	Category string
	DueDate  *string // Optional, YYYY-MM-DD
}

// CreateTodoOutput represents the output of todo creation.
type CreateTodoOutput struct {
	Todo *entity.Todo
}

// CreateTodoUseCase appends a todo to the user's list.
type CreateTodoUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewCreateTodoUseCase creates a new CreateTodoUseCase instance.
func NewCreateTodoUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *CreateTodoUseCase {
	return &CreateTodoUseCase{snapshots: snapshots, clock: clock}
}

// Execute performs the todo creation.
func (uc *CreateTodoUseCase) Execute(ctx context.Context, input CreateTodoInput) (*CreateTodoOutput, error) {
	now := uc.clock.Now()

	priority, err := parsePriority(input.Priority)
	if err != nil {
		return nil, err
	}

	dueDate, err := parseDueDate(input.DueDate, now.Location())
	if err != nil {
		return nil, err
	}

	todo, err := entity.NewTodo(input.Title, priority, input.Category, dueDate, now)
	if err != nil {
		return nil, domainerror.NewTodoError(domainerror.ErrCodeMissingTodoTitle, err.Error(), err)
	}

	list, err := loadList(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}
	list.Add(todo)

	if err := saveList(ctx, uc.snapshots, input.UserID, list); err != nil {
		return nil, err
	}
	return &CreateTodoOutput{Todo: todo}, nil
}

package todo

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// DeleteTodoInput represents the input for todo deletion.
type DeleteTodoInput struct {
	UserID uuid.UUID
	TodoID uuid.UUID
}

// DeleteTodoUseCase removes a todo.
type DeleteTodoUseCase struct {
	snapshots adapter.SnapshotRepository
}

// NewDeleteTodoUseCase creates a new DeleteTodoUseCase instance.
func NewDeleteTodoUseCase(snapshots adapter.SnapshotRepository) *DeleteTodoUseCase {
	return &DeleteTodoUseCase{snapshots: snapshots}
}

// Execute deletes the todo.
func (uc *DeleteTodoUseCase) Execute(ctx context.Context, input DeleteTodoInput) error {
	list, err := loadList(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return err
	}

	if !list.Remove(input.TodoID) {
		return domainerror.NewTodoError(domainerror.ErrCodeTodoNotFound, "todo not found", domainerror.ErrTodoNotFound)
	}

	return saveList(ctx, uc.snapshots, input.UserID, list)
}

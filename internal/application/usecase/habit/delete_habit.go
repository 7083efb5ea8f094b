package habit

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// DeleteHabitInput represents the input for habit deletion.
type DeleteHabitInput struct {
	UserID    uuid.UUID
	HabitName string
}

// DeleteHabitUseCase removes a habit. Schedule items naming it keep their label.
type DeleteHabitUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewDeleteHabitUseCase creates a new DeleteHabitUseCase instance.
func NewDeleteHabitUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *DeleteHabitUseCase {
	return &DeleteHabitUseCase{snapshots: snapshots, clock: clock}
}

// Execute deletes the habit.
func (uc *DeleteHabitUseCase) Execute(ctx context.Context, input DeleteHabitInput) error {
	book, err := loadBook(ctx, uc.snapshots, uc.clock, input.UserID)
	if err != nil {
		return err
	}

	if !book.Remove(input.HabitName) {
		return domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}

	return saveBook(ctx, uc.snapshots, input.UserID, book)
}

package habit

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// RecordProgressInput represents the input for recording habit progress.
type RecordProgressInput struct {
	UserID    uuid.UUID
	HabitName string
	Amount    float64
}

// RecordProgressOutput represents the habit after the update.
type RecordProgressOutput struct {
	Habit *entity.Habit
}

// RecordProgressUseCase adds a positive amount to a habit's counters.
type RecordProgressUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewRecordProgressUseCase creates a new RecordProgressUseCase instance.
func NewRecordProgressUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *RecordProgressUseCase {
	return &RecordProgressUseCase{snapshots: snapshots, clock: clock}
}

// Execute records the progress.
func (uc *RecordProgressUseCase) Execute(ctx context.Context, input RecordProgressInput) (*RecordProgressOutput, error) {
	book, err := loadBook(ctx, uc.snapshots, uc.clock, input.UserID)
	if err != nil {
		return nil, err
	}

	habit, err := findHabit(book, input.HabitName)
	if err != nil {
		return nil, err
	}

	if err := habit.RecordProgress(input.Amount, uc.clock.Now()); err != nil {
		return nil, habitValidationError(err)
	}

	if err := saveBook(ctx, uc.snapshots, input.UserID, book); err != nil {
		return nil, err
	}
	return &RecordProgressOutput{Habit: habit}, nil
}

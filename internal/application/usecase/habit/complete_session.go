package habit

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CompleteSessionInput represents a finished stopwatch session.
type CompleteSessionInput struct {
	UserID         uuid.UUID
	HabitName      string
	ElapsedSeconds int
}

// CompleteSessionOutput reports the recorded whole minutes.
type CompleteSessionOutput struct {
	Habit           *entity.Habit
	RecordedMinutes int
}

// CompleteSessionUseCase records a focus session as habit progress.
type CompleteSessionUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewCompleteSessionUseCase creates a new CompleteSessionUseCase instance.
func NewCompleteSessionUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *CompleteSessionUseCase {
	return &CompleteSessionUseCase{snapshots: snapshots, clock: clock}
}

// Execute completes the session.
func (uc *CompleteSessionUseCase) Execute(ctx context.Context, input CompleteSessionInput) (*CompleteSessionOutput, error) {
	book, err := loadBook(ctx, uc.snapshots, uc.clock, input.UserID)
	if err != nil {
		return nil, err
	}

	habit, err := findHabit(book, input.HabitName)
	if err != nil {
		return nil, err
	}

	minutes, err := habit.CompleteFocusSession(input.ElapsedSeconds, uc.clock.Now())
	if err != nil {
		return nil, habitValidationError(err)
	}

	if err := saveBook(ctx, uc.snapshots, input.UserID, book); err != nil {
		return nil, err
	}
	return &CompleteSessionOutput{Habit: habit, RecordedMinutes: minutes}, nil
}

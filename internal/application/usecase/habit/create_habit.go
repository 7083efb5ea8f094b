package habit

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	UserID    uuid.UUID
	Name      string
	Unit      string
	DailyGoal float64
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *entity.Habit
}

// CreateHabitUseCase adds a new habit with a unique name.
type CreateHabitUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *CreateHabitUseCase {
	return &CreateHabitUseCase{snapshots: snapshots, clock: clock}
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	habit, err := entity.NewHabit(input.Name, input.Unit, input.DailyGoal, uc.clock.Now())
	if err != nil {
		return nil, habitValidationError(err)
	}

	book, err := loadBook(ctx, uc.snapshots, uc.clock, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := book.Add(habit); err != nil {
		return nil, habitValidationError(err)
	}

	if err := saveBook(ctx, uc.snapshots, input.UserID, book); err != nil {
		return nil, err
	}
	return &CreateHabitOutput{Habit: habit}, nil
}

package habit

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// UpdateSettingsInput represents the input for changing a habit's unit and daily goal.
type UpdateSettingsInput struct {
	UserID    uuid.UUID
	HabitName string
	Unit      string
	DailyGoal float64
}

// UpdateSettingsOutput represents the updated habit.
type UpdateSettingsOutput struct {
	Habit *entity.Habit
}

// UpdateSettingsUseCase replaces a habit's unit label and goal threshold.
type UpdateSettingsUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{snapshots: snapshots, clock: clock}
}

// Execute updates the settings.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	book, err := loadBook(ctx, uc.snapshots, uc.clock, input.UserID)
	if err != nil {
		return nil, err
	}

	habit, err := findHabit(book, input.HabitName)
	if err != nil {
		return nil, err
	}

	if err := habit.UpdateSettings(input.Unit, input.DailyGoal); err != nil {
		return nil, habitValidationError(err)
	}

	if err := saveBook(ctx, uc.snapshots, input.UserID, book); err != nil {
		return nil, err
	}
	return &UpdateSettingsOutput{Habit: habit}, nil
}

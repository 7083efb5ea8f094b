package habit

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListHabitsInput represents the input for listing habits.
type ListHabitsInput struct {
	UserID uuid.UUID
}

// ListHabitsOutput represents the rolled-over habits.
type ListHabitsOutput struct {
	Habits []*entity.Habit
	Today  string
}

// ListHabitsUseCase returns every habit after the daily rollover.
type ListHabitsUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *ListHabitsUseCase {
	return &ListHabitsUseCase{snapshots: snapshots, clock: clock}
}

// Execute lists the habits.
func (uc *ListHabitsUseCase) Execute(ctx context.Context, input ListHabitsInput) (*ListHabitsOutput, error) {
	book, err := loadBook(ctx, uc.snapshots, uc.clock, input.UserID)
	if err != nil {
		return nil, err
	}

	return &ListHabitsOutput{
		Habits: book.Habits,
		Today:  entity.DateKey(uc.clock.Now()),
	}, nil
}

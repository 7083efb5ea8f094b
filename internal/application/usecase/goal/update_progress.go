package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// UpdateProgressInput represents the input for setting a big goal's current value.
type UpdateProgressInput struct {
	UserID       uuid.UUID
	GoalID       uuid.UUID
	CurrentValue float64
}

// UpdateProgressOutput carries the goal and, when it just reached its target, the completion notification.
type UpdateProgressOutput struct {
	Goal      *entity.BigGoal
	Completed *entity.GoalNotification
}

// UpdateProgressUseCase sets the current value of a BigGoal.
type UpdateProgressUseCase struct {
	snapshots adapter.SnapshotRepository
	notifier  adapter.Notifier
	clock     adapter.Clock
}

// NewUpdateProgressUseCase creates a new UpdateProgressUseCase instance.
func NewUpdateProgressUseCase(snapshots adapter.SnapshotRepository, notifier adapter.Notifier, clock adapter.Clock) *UpdateProgressUseCase {
	return &UpdateProgressUseCase{
		snapshots: snapshots,
		notifier:  notifier,
		clock:     clock,
	}
}

// Execute performs the progress update.
func (uc *UpdateProgressUseCase) Execute(ctx context.Context, input UpdateProgressInput) (*UpdateProgressOutput, error) {
	board, err := loadBoard(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	goal, completed, err := board.UpdateCurrentValue(input.GoalID, input.CurrentValue, uc.clock.Now())
	if err != nil {
		return nil, goalValidationError(err)
	}
	if goal == nil {
		return nil, notFound()
	}

	if err := saveBoard(ctx, uc.snapshots, input.UserID, board); err != nil {
		return nil, err
	}

	if completed != nil {
		uc.notifier.Notify(ctx, input.UserID, []entity.GoalNotification{*completed})
	}

	return &UpdateProgressOutput{
		Goal:      goal,
		Completed: completed,
	}, nil
}

package goal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput carries the board after the expiry sweep and the notifications it produced.
type ListGoalsOutput struct {
	Goals         []*entity.BigGoal
	Notifications []entity.GoalNotification
	Now           time.Time
}

// ListGoalsUseCase evaluates the board and returns the surviving goals.
type ListGoalsUseCase struct {
	snapshots adapter.SnapshotRepository
	notifier  adapter.Notifier
	clock     adapter.Clock
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(snapshots adapter.SnapshotRepository, notifier adapter.Notifier, clock adapter.Clock) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		snapshots: snapshots,
		notifier:  notifier,
		clock:     clock,
	}
}

// Execute runs the expiry sweep, persists removals and dispatches notifications.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	now := uc.clock.Now()

	board, err := loadBoard(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	notifications := board.Evaluate(now)
	if len(notifications) > 0 {
		// Removal is only final once the smaller board is stored
		if err := saveBoard(ctx, uc.snapshots, input.UserID, board); err != nil {
			return nil, err
		}
		uc.notifier.Notify(ctx, input.UserID, notifications)
	}

	return &ListGoalsOutput{
		Goals:         board.Goals,
		Notifications: notifications,
		Now:           now,
	}, nil
}

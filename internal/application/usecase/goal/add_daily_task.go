package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// AddDailyTaskInput represents the input for adding a daily task.
type AddDailyTaskInput struct {
	UserID       uuid.UUID
	WeeklyGoalID uuid.UUID
	Title        string
}

// AddDailyTaskOutput represents the output of adding a daily task.
type AddDailyTaskOutput struct {
	Task *entity.DailyTask
}

// AddDailyTaskUseCase appends a task dated today under a WeeklyGoal.
type AddDailyTaskUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewAddDailyTaskUseCase creates a new AddDailyTaskUseCase instance.
func NewAddDailyTaskUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *AddDailyTaskUseCase {
	return &AddDailyTaskUseCase{snapshots: snapshots, clock: clock}
}

// Execute adds the task.
func (uc *AddDailyTaskUseCase) Execute(ctx context.Context, input AddDailyTaskInput) (*AddDailyTaskOutput, error) {
	board, err := loadBoard(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	task, err := board.AddDailyTask(input.WeeklyGoalID, input.Title, uc.clock.Now())
	if err != nil {
		return nil, goalValidationError(err)
	}
	if task == nil {
		return nil, notFound()
	}

	if err := saveBoard(ctx, uc.snapshots, input.UserID, board); err != nil {
		return nil, err
	}
	return &AddDailyTaskOutput{Task: task}, nil
}

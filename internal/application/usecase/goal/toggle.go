package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ToggleTarget selects which level of the tree a toggle applies to.
type ToggleTarget string

const (
	ToggleDailyTask   ToggleTarget = "daily_task"
	ToggleWeeklyGoal  ToggleTarget = "weekly_goal"
	ToggleMonthlyGoal ToggleTarget = "monthly_goal"
)

// ToggleInput represents the input for flipping a completed flag.
type ToggleInput struct {
	UserID uuid.UUID
	Target ToggleTarget
	ID     uuid.UUID
}

// ToggleOutput reports the node's new state. Exactly one field is set.
type ToggleOutput struct {
	DailyTask   *entity.DailyTask
	WeeklyGoal  *entity.WeeklyGoal
	MonthlyGoal *entity.MonthlyGoal
}

// ToggleUseCase flips the completed flag of a task or milestone located by a full tree scan.
type ToggleUseCase struct {
	snapshots adapter.SnapshotRepository
}

// NewToggleUseCase creates a new ToggleUseCase instance.
func NewToggleUseCase(snapshots adapter.SnapshotRepository) *ToggleUseCase {
	return &ToggleUseCase{snapshots: snapshots}
}

// Execute performs the toggle.
func (uc *ToggleUseCase) Execute(ctx context.Context, input ToggleInput) (*ToggleOutput, error) {
	board, err := loadBoard(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &ToggleOutput{}
	found := false
	switch input.Target {
	case ToggleDailyTask:
		output.DailyTask, found = board.ToggleDailyTask(input.ID)
	case ToggleWeeklyGoal:
		output.WeeklyGoal, found = board.ToggleWeeklyGoal(input.ID)
	case ToggleMonthlyGoal:
		output.MonthlyGoal, found = board.ToggleMonthlyGoal(input.ID)
	}
	if !found {
		return nil, notFound()
	}

	if err := saveBoard(ctx, uc.snapshots, input.UserID, board); err != nil {
		return nil, err
	}
	return output, nil
}

package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListTodayTasksInput represents the input for listing today's daily tasks.
type ListTodayTasksInput struct {
	UserID uuid.UUID
}

// ListTodayTasksOutput represents today's tasks across the whole board.
type ListTodayTasksOutput struct {
	Date  string
	Tasks []*entity.DailyTask
}

// ListTodayTasksUseCase collects the daily tasks dated to the current day.
type ListTodayTasksUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewListTodayTasksUseCase creates a new ListTodayTasksUseCase instance.
func NewListTodayTasksUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *ListTodayTasksUseCase {
	return &ListTodayTasksUseCase{snapshots: snapshots, clock: clock}
}

// Execute lists today's tasks.
func (uc *ListTodayTasksUseCase) Execute(ctx context.Context, input ListTodayTasksInput) (*ListTodayTasksOutput, error) {
	now := uc.clock.Now()

	board, err := loadBoard(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	return &ListTodayTasksOutput{
		Date:  entity.DateKey(now),
		Tasks: board.TodaysTasks(now),
	}, nil
}

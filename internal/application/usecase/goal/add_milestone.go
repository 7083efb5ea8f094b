package goal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// AddMilestoneInput represents the input for adding a monthly or weekly goal.
type AddMilestoneInput struct {
	UserID     uuid.UUID
	ParentID   uuid.UUID
	Title      string
	TargetDate string // YYYY-MM-DD
}

// AddMonthlyGoalOutput represents the output of adding a monthly goal.
type AddMonthlyGoalOutput struct {
	MonthlyGoal *entity.MonthlyGoal
}

// AddWeeklyGoalOutput represents the output of adding a weekly goal.
type AddWeeklyGoalOutput struct {
	WeeklyGoal *entity.WeeklyGoal
}

// AddMonthlyGoalUseCase appends a MonthlyGoal under a BigGoal.
type AddMonthlyGoalUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewAddMonthlyGoalUseCase creates a new AddMonthlyGoalUseCase instance.
func NewAddMonthlyGoalUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *AddMonthlyGoalUseCase {
	return &AddMonthlyGoalUseCase{snapshots: snapshots, clock: clock}
}

// Execute adds the monthly goal. An unknown parent leaves the board untouched.
func (uc *AddMonthlyGoalUseCase) Execute(ctx context.Context, input AddMilestoneInput) (*AddMonthlyGoalOutput, error) {
	targetDate, err := parseTargetDate(input.TargetDate, uc.clock.Now().Location())
	if err != nil {
		return nil, err
	}

	board, err := loadBoard(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	monthly, err := board.AddMonthlyGoal(input.ParentID, input.Title, targetDate)
	if err != nil {
		return nil, goalValidationError(err)
	}
	if monthly == nil {
		return nil, notFound()
	}

	if err := saveBoard(ctx, uc.snapshots, input.UserID, board); err != nil {
		return nil, err
	}
	return &AddMonthlyGoalOutput{MonthlyGoal: monthly}, nil
}

// AddWeeklyGoalUseCase appends a WeeklyGoal under a MonthlyGoal found anywhere in the board.
type AddWeeklyGoalUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewAddWeeklyGoalUseCase creates a new AddWeeklyGoalUseCase instance.
func NewAddWeeklyGoalUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *AddWeeklyGoalUseCase {
	return &AddWeeklyGoalUseCase{snapshots: snapshots, clock: clock}
}

// Execute adds the weekly goal. An unknown parent leaves the board untouched.
func (uc *AddWeeklyGoalUseCase) Execute(ctx context.Context, input AddMilestoneInput) (*AddWeeklyGoalOutput, error) {
	targetDate, err := parseTargetDate(input.TargetDate, uc.clock.Now().Location())
	if err != nil {
		return nil, err
	}

	board, err := loadBoard(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	weekly, err := board.AddWeeklyGoal(input.ParentID, input.Title, targetDate)
	if err != nil {
		return nil, goalValidationError(err)
	}
	if weekly == nil {
		return nil, notFound()
	}

	if err := saveBoard(ctx, uc.snapshots, input.UserID, board); err != nil {
		return nil, err
	}
	return &AddWeeklyGoalOutput{WeeklyGoal: weekly}, nil
}

func parseTargetDate(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"target date is required",
			domainerror.ErrMissingGoalFields,
		)
	}
	parsed, err := entity.ParseDateKey(value, loc)
	if err != nil {
		return time.Time{}, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalDate,
			"invalid target date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidGoalDate,
		)
	}
	return parsed, nil
}

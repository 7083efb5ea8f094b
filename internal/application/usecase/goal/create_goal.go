package goal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CreateGoalInput represents the input for big goal creation.
type CreateGoalInput struct {
	UserID      uuid.UUID
	Title       string
	TargetValue float64
	Unit        string
	Deadline    string // YYYY-MM-DD
}

// CreateGoalOutput represents the output of big goal creation.
type CreateGoalOutput struct {
	Goal *entity.BigGoal
}

// CreateGoalUseCase adds a new BigGoal to the user's board.
type CreateGoalUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		snapshots: snapshots,
		clock:     clock,
	}
}

// Execute performs the big goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	now := uc.clock.Now()

	// Parse deadline
	var deadline time.Time
	if input.Deadline != "" {
		parsed, err := entity.ParseDateKey(input.Deadline, now.Location())
		if err != nil {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalDate,
				"invalid deadline format, expected YYYY-MM-DD",
				domainerror.ErrInvalidGoalDate,
			)
		}
		deadline = parsed
	}

	board, err := loadBoard(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	goal, err := board.AddBigGoal(input.Title, input.TargetValue, input.Unit, deadline, now)
	if err != nil {
		return nil, goalValidationError(err)
	}

	if err := saveBoard(ctx, uc.snapshots, input.UserID, board); err != nil {
		return nil, err
	}

	return &CreateGoalOutput{Goal: goal}, nil
}

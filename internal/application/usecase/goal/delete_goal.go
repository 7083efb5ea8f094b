package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteGoalUseCase removes a BigGoal and its subtree.
type DeleteGoalUseCase struct {
	snapshots adapter.SnapshotRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(snapshots adapter.SnapshotRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{snapshots: snapshots}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	board, err := loadBoard(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return err
	}

	if !board.DeleteBigGoal(input.GoalID) {
		return notFound()
	}

	return saveBoard(ctx, uc.snapshots, input.UserID, board)
}

// Package goal contains goal hierarchy use cases.
package goal

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func loadBoard(ctx context.Context, snapshots adapter.SnapshotRepository, userID uuid.UUID) (*entity.GoalBoard, error) {
	board, err := snapshots.LoadGoals(ctx, userID)
	if err != nil {
		slog.Error("Failed to load goals", "user_id", userID, "error", err)
		return nil, domainerror.NewSnapshotReadError(err)
	}
	return board, nil
}

func saveBoard(ctx context.Context, snapshots adapter.SnapshotRepository, userID uuid.UUID, board *entity.GoalBoard) error {
	if err := snapshots.SaveGoals(ctx, userID, board); err != nil {
		slog.Error("Failed to save goals", "user_id", userID, "error", err)
		return domainerror.NewSnapshotWriteError(err)
	}
	return nil
}

// goalValidationError maps entity validation sentinels to coded goal errors.
func goalValidationError(err error) error {
	switch {
	case errors.Is(err, domainerror.ErrMissingGoalFields):
		return domainerror.NewGoalError(domainerror.ErrCodeMissingGoalFields, err.Error(), err)
	case errors.Is(err, domainerror.ErrInvalidTargetValue):
		return domainerror.NewGoalError(domainerror.ErrCodeInvalidTargetValue, err.Error(), err)
	case errors.Is(err, domainerror.ErrInvalidCurrentValue):
		return domainerror.NewGoalError(domainerror.ErrCodeInvalidCurrentValue, err.Error(), err)
	default:
		return err
	}
}

func notFound() error {
	return domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", domainerror.ErrGoalNotFound)
}

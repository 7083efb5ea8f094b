// Package habit contains habit tracking use cases.
package habit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// loadBook reads the habit book and applies the daily rollover.
// The rolled-over book is persisted only when a habit actually changed.
func loadBook(ctx context.Context, snapshots adapter.SnapshotRepository, clock adapter.Clock, userID uuid.UUID) (*entity.HabitBook, error) {
	book, err := snapshots.LoadHabits(ctx, userID)
	if err != nil {
		slog.Error("Failed to load habits", "user_id", userID, "error", err)
		return nil, domainerror.NewSnapshotReadError(err)
	}

	if book.Rollover(clock.Now()) {
		if err := saveBook(ctx, snapshots, userID, book); err != nil {
			return nil, err
		}
	}
	return book, nil
}

func saveBook(ctx context.Context, snapshots adapter.SnapshotRepository, userID uuid.UUID, book *entity.HabitBook) error {
	if err := snapshots.SaveHabits(ctx, userID, book); err != nil {
		slog.Error("Failed to save habits", "user_id", userID, "error", err)
		return domainerror.NewSnapshotWriteError(err)
	}
	return nil
}

func findHabit(book *entity.HabitBook, name string) (*entity.Habit, error) {
	habit := book.Find(name)
	if habit == nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}
	return habit, nil
}

func habitValidationError(err error) error {
	switch {
	case errors.Is(err, domainerror.ErrMissingHabitFields):
		return domainerror.NewHabitError(domainerror.ErrCodeMissingHabitFields, err.Error(), err)
	case errors.Is(err, domainerror.ErrInvalidDailyGoal):
		return domainerror.NewHabitError(domainerror.ErrCodeInvalidDailyGoal, err.Error(), err)
	case errors.Is(err, domainerror.ErrInvalidProgressAmount):
		return domainerror.NewHabitError(domainerror.ErrCodeInvalidProgressAmount, err.Error(), err)
	case errors.Is(err, domainerror.ErrSessionTooShort):
		return domainerror.NewHabitError(domainerror.ErrCodeSessionTooShort, err.Error(), err)
	case errors.Is(err, domainerror.ErrHabitAlreadyExists):
		return domainerror.NewHabitError(domainerror.ErrCodeHabitAlreadyExists, err.Error(), err)
	default:
		return err
	}
}

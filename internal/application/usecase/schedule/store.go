// Package schedule contains daily schedule, template and saved item use cases.
package schedule

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// ItemInput is the date-agnostic content of a schedule entry as received from callers.
type ItemInput struct {
	StartTime string
	EndTime   string
	Title     string
	IsHabit   bool
	HabitName string
	Category  string
	Priority  string
	Notes     string
}

func (in ItemInput) toDetails() (entity.ItemDetails, error) {
	priority, err := entity.ParsePriority(in.Priority)
	if err != nil {
		return entity.ItemDetails{}, domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidItemPriority,
			err.Error(),
			err,
		)
	}
	return entity.ItemDetails{
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Title:     in.Title,
		IsHabit:   in.IsHabit,
		HabitName: in.HabitName,
		Category:  in.Category,
		Priority:  priority,
		Notes:     in.Notes,
	}, nil
}

func loadSchedule(ctx context.Context, snapshots adapter.SnapshotRepository, userID uuid.UUID) (*entity.Schedule, error) {
	schedule, err := snapshots.LoadSchedule(ctx, userID)
	if err != nil {
		slog.Error("Failed to load schedule", "user_id", userID, "error", err)
		return nil, domainerror.NewSnapshotReadError(err)
	}
	return schedule, nil
}

func saveSchedule(ctx context.Context, snapshots adapter.SnapshotRepository, userID uuid.UUID, schedule *entity.Schedule) error {
	if err := snapshots.SaveSchedule(ctx, userID, schedule); err != nil {
		slog.Error("Failed to save schedule", "user_id", userID, "error", err)
		return domainerror.NewSnapshotWriteError(err)
	}
	return nil
}

func loadTemplates(ctx context.Context, snapshots adapter.SnapshotRepository, userID uuid.UUID) (*entity.TemplateSet, error) {
	templates, err := snapshots.LoadTemplates(ctx, userID)
	if err != nil {
		slog.Error("Failed to load templates", "user_id", userID, "error", err)
		return nil, domainerror.NewSnapshotReadError(err)
	}
	return templates, nil
}

func saveTemplates(ctx context.Context, snapshots adapter.SnapshotRepository, userID uuid.UUID, templates *entity.TemplateSet) error {
	if err := snapshots.SaveTemplates(ctx, userID, templates); err != nil {
		slog.Error("Failed to save templates", "user_id", userID, "error", err)
		return domainerror.NewSnapshotWriteError(err)
	}
	return nil
}

func loadSavedItems(ctx context.Context, snapshots adapter.SnapshotRepository, userID uuid.UUID) (*entity.SavedItemSet, error) {
	items, err := snapshots.LoadSavedItems(ctx, userID)
	if err != nil {
		slog.Error("Failed to load saved items", "user_id", userID, "error", err)
		return nil, domainerror.NewSnapshotReadError(err)
	}
	return items, nil
}

func saveSavedItems(ctx context.Context, snapshots adapter.SnapshotRepository, userID uuid.UUID, items *entity.SavedItemSet) error {
	if err := snapshots.SaveSavedItems(ctx, userID, items); err != nil {
		slog.Error("Failed to save saved items", "user_id", userID, "error", err)
		return domainerror.NewSnapshotWriteError(err)
	}
	return nil
}

func itemNotFound() error {
	return domainerror.NewScheduleError(
		domainerror.ErrCodeScheduleItemNotFound,
		"schedule item not found",
		domainerror.ErrScheduleItemNotFound,
	)
}

// resolveDate defaults an empty date to today and validates the rest.
func resolveDate(value string, clock adapter.Clock) (string, error) {
	if value == "" {
		return entity.DateKey(clock.Now()), nil
	}
	if _, err := entity.ParseDateKey(value, clock.Now().Location()); err != nil {
		return "", domainerror.ScheduleValidationError(domainerror.ErrInvalidScheduleDate)
	}
	return value, nil
}

package schedule

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListItemsInput represents the input for one day's schedule.
type ListItemsInput struct {
	UserID uuid.UUID
	Date   string // Optional, defaults to today
}

// ScheduledEntry pairs an item with the habit its label currently resolves to, if any.
type ScheduledEntry struct {
	Item  *entity.ScheduleItem
	Habit *entity.Habit
}

// ListItemsOutput represents the day's items in start-time order.
type ListItemsOutput struct {
	Date    string
	Entries []ScheduledEntry
}

// ListItemsUseCase returns the items of one day and resolves habit back-references by name.
type ListItemsUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *ListItemsUseCase {
	return &ListItemsUseCase{snapshots: snapshots, clock: clock}
}

// Execute lists the day's schedule.
func (uc *ListItemsUseCase) Execute(ctx context.Context, input ListItemsInput) (*ListItemsOutput, error) {
	date, err := resolveDate(input.Date, uc.clock)
	if err != nil {
		return nil, err
	}

	schedule, err := loadSchedule(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	// A missing habit book only loses the habit lookup, not the schedule
	habits, err := uc.snapshots.LoadHabits(ctx, input.UserID)
	if err != nil {
		slog.Warn("Failed to load habits for schedule lookup", "user_id", input.UserID, "error", err)
		habits = entity.NewHabitBook()
	}
	habits.Rollover(uc.clock.Now())

	items := schedule.ItemsOn(date)
	entries := make([]ScheduledEntry, 0, len(items))
	for _, item := range items {
		entry := ScheduledEntry{Item: item}
		if item.IsHabit {
			entry.Habit = habits.Find(item.HabitName)
		}
		entries = append(entries, entry)
	}

	return &ListItemsOutput{Date: date, Entries: entries}, nil
}

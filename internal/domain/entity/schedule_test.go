package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func TestValidateTimeRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected error
	}{
		{name: "valid range", start: "08:00", end: "09:30"},
		{name: "end before start", start: "10:00", end: "09:00", expected: domainerror.ErrInvalidTimeRange},
		{name: "equal bounds", start: "10:00", end: "10:00", expected: domainerror.ErrInvalidTimeRange},
		{name: "unpadded hour", start: "8:00", end: "09:00", expected: domainerror.ErrInvalidTimeFormat},
		{name: "hour out of range", start: "08:00", end: "24:00", expected: domainerror.ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimeRange(tt.start, tt.end)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestItemDetails_Validate(t *testing.T) {
	t.Run("title is required", func(t *testing.T) {
		err := ItemDetails{StartTime: "08:00", EndTime: "09:00"}.Validate()
		if !errors.Is(err, domainerror.ErrMissingScheduleTitle) {
			t.Errorf("expected ErrMissingScheduleTitle, got %v", err)
		}
	})

	t.Run("habit blocks need a habit name", func(t *testing.T) {
		err := ItemDetails{StartTime: "08:00", EndTime: "09:00", Title: "Read", IsHabit: true}.Validate()
		if !errors.Is(err, domainerror.ErrMissingHabitReference) {
			t.Errorf("expected ErrMissingHabitReference, got %v", err)
		}
	})
}

func TestSchedule_Items(t *testing.T) {
	now := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	schedule := NewSchedule()

	gym, err := schedule.AddItem(ItemDetails{StartTime: "14:00", EndTime: "15:00", Title: "Gym", HabitName: "ignored"}, "2025-03-10", now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	work, _ := schedule.AddItem(ItemDetails{StartTime: "08:00", EndTime: "09:00", Title: "Work"}, "2025-03-10", now)
	_, _ = schedule.AddItem(ItemDetails{StartTime: "07:00", EndTime: "08:00", Title: "Tomorrow"}, "2025-03-11", now)

	t.Run("non-habit items drop the habit name", func(t *testing.T) {
		if gym.HabitName != "" {
			t.Errorf("expected empty habit name, got %q", gym.HabitName)
		}
		if gym.Priority != PriorityNone {
			t.Errorf("expected default priority none, got %s", gym.Priority)
		}
	})

	t.Run("items of a day are sorted by start time", func(t *testing.T) {
		items := schedule.ItemsOn("2025-03-10")
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].ID != work.ID || items[1].ID != gym.ID {
			t.Errorf("expected work before gym, got %s then %s", items[0].Title, items[1].Title)
		}
	})

	t.Run("rejects an invalid date", func(t *testing.T) {
		_, err := schedule.AddItem(ItemDetails{StartTime: "07:00", EndTime: "08:00", Title: "Bad"}, "10/03/2025", now)
		if !errors.Is(err, domainerror.ErrInvalidScheduleDate) {
			t.Errorf("expected ErrInvalidScheduleDate, got %v", err)
		}
	})

	t.Run("toggle and update", func(t *testing.T) {
		if item, ok := schedule.ToggleItem(work.ID); !ok || !item.Completed {
			t.Errorf("expected toggled item, got %v", item)
		}
		updated, err := schedule.UpdateItem(work.ID, ItemDetails{StartTime: "08:30", EndTime: "09:30", Title: "Focus"})
		if err != nil || updated == nil {
			t.Fatalf("expected update, got %v (err %v)", updated, err)
		}
		if updated.Title != "Focus" || !updated.Completed {
			t.Errorf("expected new title with completion kept, got %+v", updated)
		}
		missing, err := schedule.UpdateItem(uuid.New(), ItemDetails{StartTime: "08:30", EndTime: "09:30", Title: "Focus"})
		if missing != nil || err != nil {
			t.Errorf("expected nil for unknown item, got %v (err %v)", missing, err)
		}
	})

	t.Run("apply template replaces only today", func(t *testing.T) {
		template, err := NewTemplate("Weekday", TemplateFromItems(schedule.ItemsOn("2025-03-10")), now)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		created := schedule.ApplyTemplate(template, now)
		if len(created) != 2 {
			t.Fatalf("expected 2 created items, got %d", len(created))
		}
		for _, item := range created {
			if item.Completed {
				t.Errorf("expected fresh uncompleted item, got %+v", item)
			}
			if item.ID == work.ID || item.ID == gym.ID {
				t.Error("expected new ids for applied items")
			}
		}
		if len(schedule.ItemsOn("2025-03-10")) != 2 {
			t.Errorf("expected today to hold exactly the template items")
		}
		if len(schedule.ItemsOn("2025-03-11")) != 1 {
			t.Errorf("expected other days untouched")
		}
	})
}

func TestNewTemplate(t *testing.T) {
	now := time.Now()

	t.Run("requires a name", func(t *testing.T) {
		_, err := NewTemplate(" ", []TemplateEntry{{StartTime: "08:00", EndTime: "09:00", Title: "A"}}, now)
		if !errors.Is(err, domainerror.ErrMissingTemplateName) {
			t.Errorf("expected ErrMissingTemplateName, got %v", err)
		}
	})

	t.Run("requires entries", func(t *testing.T) {
		_, err := NewTemplate("Empty", nil, now)
		if !errors.Is(err, domainerror.ErrEmptyTemplate) {
			t.Errorf("expected ErrEmptyTemplate, got %v", err)
		}
	})

	t.Run("validates every entry", func(t *testing.T) {
		_, err := NewTemplate("Bad", []TemplateEntry{
			{StartTime: "08:00", EndTime: "09:00", Title: "A"},
			{StartTime: "10:00", EndTime: "09:00", Title: "B"},
		}, now)
		if !errors.Is(err, domainerror.ErrInvalidTimeRange) {
			t.Errorf("expected ErrInvalidTimeRange, got %v", err)
		}
	})
}

func TestSavedItemSet(t *testing.T) {
	set := NewSavedItemSet()
	item, err := set.Save(ItemDetails{StartTime: "12:00", EndTime: "12:45", Title: " Walk "}, time.Now())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.Title != "Walk" {
		t.Errorf("expected trimmed title, got %q", item.Title)
	}
	if set.Find(item.ID) != item {
		t.Error("expected to find the saved item")
	}
	if !set.Remove(item.ID) || len(set.Items) != 0 {
		t.Error("expected the saved item to be removed")
	}
}

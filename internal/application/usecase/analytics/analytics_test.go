package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type fakeSnapshots struct {
	adapter.SnapshotRepository
	book *entity.HabitBook
	list *entity.TodoList
}

func (f *fakeSnapshots) LoadHabits(context.Context, uuid.UUID) (*entity.HabitBook, error) {
	return f.book, nil
}

func (f *fakeSnapshots) LoadTodos(context.Context, uuid.UUID) (*entity.TodoList, error) {
	return f.list, nil
}

type memoryCache struct {
	entries map[string][]byte
	sets    int
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	payload, ok := c.entries[key]
	return payload, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, payload []byte, _ time.Duration) error {
	c.sets++
	c.entries[key] = payload
	return nil
}

var reportNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func sampleSnapshots() ([]*entity.Habit, []*entity.Todo) {
	habits := []*entity.Habit{{
		Name:            "Reading",
		Unit:            "pages",
		DailyGoal:       10,
		ConsecutiveDays: 2,
		TodayValue:      12,
		LastUpdated:     reportNow,
		History: map[string]float64{
			"2025-03-07": 5,
			"2025-03-09": 10,
			"2025-03-10": 12,
		},
	}}
	completedAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	todos := []*entity.Todo{{
		ID:          uuid.New(),
		Title:       "Taxes",
		Completed:   true,
		Priority:    entity.PriorityHigh,
		CreatedAt:   time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC),
		CompletedAt: &completedAt,
	}}
	return habits, todos
}

func TestParseWindow(t *testing.T) {
	for _, days := range []int{7, 30, 90} {
		if _, err := ParseWindow(days); err != nil {
			t.Errorf("expected %d to be accepted, got %v", days, err)
		}
	}

	// Anything else is rejected with a coded error
	for _, days := range []int{0, 1, 14, 365, -7} {
		_, err := ParseWindow(days)
		var analyticsErr *domainerror.AnalyticsError
		if !errors.As(err, &analyticsErr) || analyticsErr.Code != domainerror.ErrCodeInvalidWindow {
			t.Errorf("expected %s for %d, got %v", domainerror.ErrCodeInvalidWindow, days, err)
		}
	}
}

func TestDaySeries(t *testing.T) {
	t.Run("ends today and runs oldest first", func(t *testing.T) {
		days := DaySeries(reportNow, WindowWeek)
		if len(days) != 7 {
			t.Fatalf("expected 7 days, got %d", len(days))
		}
		if days[0] != "2025-03-04" || days[6] != "2025-03-10" {
			t.Errorf("expected 2025-03-04..2025-03-10, got %s..%s", days[0], days[6])
		}
	})

	t.Run("crosses month boundaries", func(t *testing.T) {
		days := DaySeries(time.Date(2025, 3, 2, 0, 30, 0, 0, time.UTC), WindowWeek)
		if days[0] != "2025-02-24" {
			t.Errorf("expected 2025-02-24, got %s", days[0])
		}
	})
}

func TestDerive(t *testing.T) {
	habits, todos := sampleSnapshots()
	report := Derive(habits, todos, WindowWeek, reportNow)

	t.Run("one point per day", func(t *testing.T) {
		if len(report.Days) != 7 || report.Window != 7 {
			t.Fatalf("expected 7 days for window 7, got %d for %d", len(report.Days), report.Window)
		}
	})

	t.Run("habit completion counts days at goal", func(t *testing.T) {
		if report.Days[5].HabitCompletionRate != 100 {
			t.Errorf("expected 100 on 2025-03-09, got %v", report.Days[5].HabitCompletionRate)
		}
		if report.Days[3].HabitCompletionRate != 0 {
			t.Errorf("expected 0 on 2025-03-07, got %v", report.Days[3].HabitCompletionRate)
		}
	})

	t.Run("task backlog starts on creation day", func(t *testing.T) {
		if report.Days[3].TotalTasks != 0 {
			t.Errorf("expected no tasks before creation, got %d", report.Days[3].TotalTasks)
		}
		last := report.Days[6]
		if last.TotalTasks != 1 || last.TasksCompleted != 1 || last.TaskCompletionRate != 100 {
			t.Errorf("expected 1/1 at 100 on the last day, got %+v", last)
		}
	})

	t.Run("summary is rounded to one decimal", func(t *testing.T) {
		if report.Summary.AverageHabitCompletion != 28.6 {
			t.Errorf("expected 28.6, got %v", report.Summary.AverageHabitCompletion)
		}
		if report.Summary.AverageProductivity != 22.9 {
			t.Errorf("expected 22.9, got %v", report.Summary.AverageProductivity)
		}
		if report.Summary.TotalTasksCompleted != 1 {
			t.Errorf("expected 1 task completed, got %d", report.Summary.TotalTasksCompleted)
		}
	})

	t.Run("habit trend streaks", func(t *testing.T) {
		if len(report.HabitTrends) != 1 {
			t.Fatalf("expected 1 trend, got %d", len(report.HabitTrends))
		}
		trend := report.HabitTrends[0]
		if trend.BestStreak != 2 || trend.CurrentStreak != 2 {
			t.Errorf("expected streaks 2/2, got %d/%d", trend.BestStreak, trend.CurrentStreak)
		}
		if trend.AverageDaily != 3.9 {
			t.Errorf("expected average 3.9, got %v", trend.AverageDaily)
		}
	})

	t.Run("empty snapshots yield zeros", func(t *testing.T) {
		empty := Derive(nil, nil, WindowMonth, reportNow)
		if len(empty.Days) != 30 || empty.Summary.AverageProductivity != 0 {
			t.Errorf("expected 30 empty days, got %d days and %v", len(empty.Days), empty.Summary.AverageProductivity)
		}
	})
}

func TestGetAnalyticsUseCase(t *testing.T) {
	ctx := context.Background()
	habits, todos := sampleSnapshots()
	snapshots := &fakeSnapshots{
		book: &entity.HabitBook{Habits: habits},
		list: &entity.TodoList{Todos: todos},
	}
	cache := &memoryCache{entries: map[string][]byte{}}
	clock := &fixedClock{now: reportNow}
	userID := uuid.New()
	uc := NewGetAnalyticsUseCase(snapshots, cache, clock, time.Hour)

	t.Run("first request derives and caches", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetAnalyticsInput{UserID: userID, Days: 7})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Cached {
			t.Error("expected a fresh report")
		}
		if cache.sets != 1 {
			t.Errorf("expected 1 cache write, got %d", cache.sets)
		}
	})

	t.Run("unchanged snapshots hit the cache", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetAnalyticsInput{UserID: userID, Days: 7})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !output.Cached {
			t.Error("expected a cached report")
		}
		if output.Report.Summary.AverageHabitCompletion != 28.6 {
			t.Errorf("expected cached summary 28.6, got %v", output.Report.Summary.AverageHabitCompletion)
		}
	})

	t.Run("a different window misses", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetAnalyticsInput{UserID: userID, Days: 30})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Cached {
			t.Error("expected a fresh report for a new window")
		}
	})

	t.Run("changed snapshots miss", func(t *testing.T) {
		habits[0].TotalValue += 1
		output, err := uc.Execute(ctx, GetAnalyticsInput{UserID: userID, Days: 7})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Cached {
			t.Error("expected a fresh report after a snapshot change")
		}
	})

	t.Run("works without a cache", func(t *testing.T) {
		output, err := NewGetAnalyticsUseCase(snapshots, nil, clock, time.Hour).Execute(ctx, GetAnalyticsInput{UserID: userID, Days: 90})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Cached || len(output.Report.Days) != 90 {
			t.Errorf("expected 90 fresh days, got %d cached=%v", len(output.Report.Days), output.Cached)
		}
	})

	t.Run("invalid window", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetAnalyticsInput{UserID: userID, Days: 10})
		var analyticsErr *domainerror.AnalyticsError
		if !errors.As(err, &analyticsErr) {
			t.Fatalf("expected AnalyticsError, got %v", err)
		}
	})
}

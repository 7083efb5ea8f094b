package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

const (
	habitWeight = 0.6
	taskWeight  = 0.4
)

// DayPoint aggregates one calendar day.
type DayPoint struct {
	Date                string  `json:"date"`
	HabitCompletionRate float64 `json:"habit_completion_rate"`
	TasksCompleted      int     `json:"tasks_completed"`
	TotalTasks          int     `json:"total_tasks"`
	TaskCompletionRate  float64 `json:"task_completion_rate"`
	ProductivityScore   float64 `json:"productivity_score"`
}

// HabitPoint is one day of a habit's trend.
type HabitPoint struct {
	Date   string  `json:"date"`
	Actual float64 `json:"actual"`
	Goal   float64 `json:"goal"`
}

// HabitTrend is the per-habit series plus streak figures.
type HabitTrend struct {
	Name          string       `json:"name"`
	Unit          string       `json:"unit"`
	Points        []HabitPoint `json:"points"`
	BestStreak    int          `json:"best_streak"`
	CurrentStreak int          `json:"current_streak"`
	AverageDaily  float64      `json:"average_daily"`
}

// Summary condenses the window.
type Summary struct {
	AverageHabitCompletion float64 `json:"average_habit_completion"`
	AverageProductivity    float64 `json:"average_productivity"`
	TotalTasksCompleted    int     `json:"total_tasks_completed"`
}

// Report is the complete analytics output for one window.
type Report struct {
	Window      int          `json:"window"`
	Days        []DayPoint   `json:"days"`
	HabitTrends []HabitTrend `json:"habit_trends"`
	Summary     Summary      `json:"summary"`
}

// Derive computes the report. It reads the snapshots and never modifies them.
func Derive(habits []*entity.Habit, todos []*entity.Todo, window Window, now time.Time) *Report {
	days := DaySeries(now, window)
	loc := now.Location()

	report := &Report{
		Window:      int(window),
		Days:        make([]DayPoint, 0, len(days)),
		HabitTrends: make([]HabitTrend, 0, len(habits)),
	}

	var habitRateSum, productivitySum float64
	for _, day := range days {
		point := DayPoint{Date: day}
		point.HabitCompletionRate = habitCompletionRate(habits, day)
		point.TasksCompleted, point.TotalTasks = taskCounts(todos, day, loc)
		if point.TotalTasks > 0 {
			point.TaskCompletionRate = float64(point.TasksCompleted) / float64(point.TotalTasks) * 100
		}
		point.ProductivityScore = point.HabitCompletionRate*habitWeight + point.TaskCompletionRate*taskWeight

		habitRateSum += point.HabitCompletionRate
		productivitySum += point.ProductivityScore
		report.Summary.TotalTasksCompleted += point.TasksCompleted
		report.Days = append(report.Days, point)
	}

	if len(days) > 0 {
		report.Summary.AverageHabitCompletion = roundOne(habitRateSum / float64(len(days)))
		report.Summary.AverageProductivity = roundOne(productivitySum / float64(len(days)))
	}

	for _, habit := range habits {
		report.HabitTrends = append(report.HabitTrends, habitTrend(habit, days))
	}

	return report
}

func habitCompletionRate(habits []*entity.Habit, day string) float64 {
	if len(habits) == 0 {
		return 0
	}
	met := 0
	for _, habit := range habits {
		if habit.DailyGoal > 0 && habit.History[day] >= habit.DailyGoal {
			met++
		}
	}
	return float64(met) / float64(len(habits)) * 100
}

// taskCounts returns the todos completed on day and the backlog created on or before it.
func taskCounts(todos []*entity.Todo, day string, loc *time.Location) (completed, total int) {
	for _, todo := range todos {
		if entity.DateKey(todo.CreatedAt.In(loc)) <= day {
			total++
		}
		if todo.Completed && todo.CompletedAt != nil && entity.DateKey(todo.CompletedAt.In(loc)) == day {
			completed++
		}
	}
	return completed, total
}

func habitTrend(habit *entity.Habit, days []string) HabitTrend {
	trend := HabitTrend{
		Name:          habit.Name,
		Unit:          habit.Unit,
		Points:        make([]HabitPoint, 0, len(days)),
		CurrentStreak: habit.ConsecutiveDays,
	}

	var sum float64
	run := 0
	for _, day := range days {
		actual := habit.History[day]
		trend.Points = append(trend.Points, HabitPoint{Date: day, Actual: actual, Goal: habit.DailyGoal})
		sum += actual

		if habit.DailyGoal > 0 && actual >= habit.DailyGoal {
			run++
			if run > trend.BestStreak {
				trend.BestStreak = run
			}
		} else {
			run = 0
		}
	}

	if len(days) > 0 {
		trend.AverageDaily = roundOne(sum / float64(len(days)))
	}
	return trend
}

func roundOne(value float64) float64 {
	return decimal.NewFromFloat(value).Round(1).InexactFloat64()
}

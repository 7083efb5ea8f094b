package entity

import (
	"math"
	"strings"
	"time"

	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// MinFocusSessionSeconds is the shortest focus session that can be completed.
const MinFocusSessionSeconds = 60

// Habit is a recurring, quantity-tracked activity identified by its name.
type Habit struct {
	Name            string
	TotalValue      float64
	Unit            string
	ConsecutiveDays int
	LastUpdated     time.Time
	TodayValue      float64
	DailyGoal       float64
	History         map[string]float64
	CreatedAt       time.Time
}

// NewHabit creates a habit with empty history.
func NewHabit(name, unit string, dailyGoal float64, now time.Time) (*Habit, error) {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if name == "" || unit == "" {
		return nil, domainerror.ErrMissingHabitFields
	}
	if dailyGoal <= 0 {
		return nil, domainerror.ErrInvalidDailyGoal
	}

	return &Habit{
		Name:        name,
		Unit:        unit,
		DailyGoal:   dailyGoal,
		History:     map[string]float64{},
		LastUpdated: now,
		CreatedAt:   now,
	}, nil
}

// Rollover brings today's counter and the streak in line with now's calendar day.
// It is a no-op when LastUpdated already falls on today and reports whether anything changed.
func (h *Habit) Rollover(now time.Time) bool {
	today := DateKey(now)
	if DateKey(h.LastUpdated) == today {
		return false
	}
	if h.History == nil {
		h.History = map[string]float64{}
	}

	before := *h
	h.TodayValue = h.History[today]

	yesterday := PreviousDateKey(now)
	if h.History[yesterday] <= 0 || DateKey(h.LastUpdated) != yesterday {
		h.ConsecutiveDays = 0
	}

	return before.TodayValue != h.TodayValue || before.ConsecutiveDays != h.ConsecutiveDays
}

// RecordProgress adds a positive amount to today's and the cumulative counters.
// The streak grows by one on the first contributing update of a day.
func (h *Habit) RecordProgress(amount float64, now time.Time) error {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domainerror.ErrInvalidProgressAmount
	}

	h.Rollover(now)

	wasZero := h.TodayValue == 0
	h.TotalValue += amount
	h.TodayValue += amount
	h.History[DateKey(now)] = h.TodayValue
	if wasZero {
		h.ConsecutiveDays++
	}
	h.LastUpdated = now
	return nil
}

// CompleteFocusSession records the whole minutes of a timed session.
func (h *Habit) CompleteFocusSession(elapsedSeconds int, now time.Time) (int, error) {
	if elapsedSeconds < MinFocusSessionSeconds {
		return 0, domainerror.ErrSessionTooShort
	}
	minutes := elapsedSeconds / 60
	if err := h.RecordProgress(float64(minutes), now); err != nil {
		return 0, err
	}
	return minutes, nil
}

// UpdateSettings replaces the unit label and daily goal.
func (h *Habit) UpdateSettings(unit string, dailyGoal float64) error {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return domainerror.ErrMissingHabitFields
	}
	if dailyGoal <= 0 {
		return domainerror.ErrInvalidDailyGoal
	}
	h.Unit = unit
	h.DailyGoal = dailyGoal
	return nil
}

// ProgressPercentage returns today's progress toward the daily goal, capped at 100.
func (h *Habit) ProgressPercentage() float64 {
	if h.DailyGoal <= 0 {
		return 0
	}
	return math.Min(h.TodayValue/h.DailyGoal*100, 100)
}

// HabitBook is a user's set of habits, unique by name.
type HabitBook struct {
	Habits []*Habit
}

// NewHabitBook creates an empty habit book.
func NewHabitBook() *HabitBook {
	return &HabitBook{Habits: []*Habit{}}
}

// Add inserts a habit, rejecting duplicate names.
func (b *HabitBook) Add(habit *Habit) error {
	if b.Find(habit.Name) != nil {
		return domainerror.ErrHabitAlreadyExists
	}
	b.Habits = append(b.Habits, habit)
	return nil
}

// Find returns the habit with the given name, or nil.
func (b *HabitBook) Find(name string) *Habit {
	name = strings.TrimSpace(name)
	for _, h := range b.Habits {
		if h.Name == name {
			return h
		}
	}
	return nil
}

// Remove deletes the habit with the given name.
func (b *HabitBook) Remove(name string) bool {
	name = strings.TrimSpace(name)
	for i, h := range b.Habits {
		if h.Name == name {
			b.Habits = append(b.Habits[:i], b.Habits[i+1:]...)
			return true
		}
	}
	return false
}

// Rollover applies the daily rollover to every habit and reports whether any changed.
func (b *HabitBook) Rollover(now time.Time) bool {
	changed := false
	for _, h := range b.Habits {
		if h.Rollover(now) {
			changed = true
		}
	}
	return changed
}

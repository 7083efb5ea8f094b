// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// BigGoal is the root of a goal hierarchy: a measurable target with a deadline.
type BigGoal struct {
	ID           uuid.UUID
	Title        string
	TargetValue  float64
	CurrentValue float64 // Unclamped; may exceed TargetValue
	Unit         string
	Deadline     time.Time
	CreatedAt    time.Time
	MonthlyGoals []*MonthlyGoal
}

// MonthlyGoal is a milestone under a BigGoal.
type MonthlyGoal struct {
	ID          uuid.UUID
	BigGoalID   uuid.UUID
	Title       string
	TargetDate  time.Time
	Completed   bool
	WeeklyGoals []*WeeklyGoal
}

// WeeklyGoal is a milestone under a MonthlyGoal.
type WeeklyGoal struct {
	ID            uuid.UUID
	MonthlyGoalID uuid.UUID
	Title         string
	TargetDate    time.Time
	Completed     bool
	DailyTasks    []*DailyTask
}

// DailyTask is the finest unit of the hierarchy, tied to one calendar day.
type DailyTask struct {
	ID           uuid.UUID
	WeeklyGoalID uuid.UUID
	Title        string
	Completed    bool
	Date         string
}

// Progress returns the goal completion percentage in [0, 100].
// A zero target yields 0.
func (g *BigGoal) Progress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	current := math.Max(g.CurrentValue, 0)
	return math.Min(current/g.TargetValue*100, 100)
}

// IsExpired reports whether the deadline day lies strictly before now's calendar day.
// A goal stays active through its whole deadline day.
func (g *BigGoal) IsExpired(now time.Time) bool {
	return DateKey(g.Deadline) < DateKey(now)
}

// Progress returns the share of completed weekly goals.
func (m *MonthlyGoal) Progress() float64 {
	if len(m.WeeklyGoals) == 0 {
		return 0
	}
	done := 0
	for _, w := range m.WeeklyGoals {
		if w.Completed {
			done++
		}
	}
	return float64(done) / float64(len(m.WeeklyGoals)) * 100
}

// Progress returns the share of completed daily tasks.
func (w *WeeklyGoal) Progress() float64 {
	if len(w.DailyTasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range w.DailyTasks {
		if t.Completed {
			done++
		}
	}
	return float64(done) / float64(len(w.DailyTasks)) * 100
}

// NotificationKind distinguishes goal notifications.
type NotificationKind string

const (
	NotificationGoalCompleted NotificationKind = "goal_completed"
	NotificationGoalExpired   NotificationKind = "goal_expired"
)

// GoalNotification is an informational event produced by the goal board.
type GoalNotification struct {
	Kind            NotificationKind
	GoalID          uuid.UUID
	Title           string
	AchievedPercent int
	At              time.Time
}

// GoalBoard holds a user's complete goal hierarchy.
// Lookups scan the tree in stored order.
type GoalBoard struct {
	Goals []*BigGoal
}

// NewGoalBoard creates an empty board.
func NewGoalBoard() *GoalBoard {
	return &GoalBoard{Goals: []*BigGoal{}}
}

// AddBigGoal validates and appends a new BigGoal.
func (b *GoalBoard) AddBigGoal(title string, targetValue float64, unit string, deadline, now time.Time) (*BigGoal, error) {
	title = strings.TrimSpace(title)
	unit = strings.TrimSpace(unit)
	if title == "" || unit == "" || deadline.IsZero() {
		return nil, domainerror.ErrMissingGoalFields
	}
	if targetValue <= 0 {
		return nil, domainerror.ErrInvalidTargetValue
	}

	goal := &BigGoal{
		ID:           uuid.New(),
		Title:        title,
		TargetValue:  targetValue,
		CurrentValue: 0,
		Unit:         unit,
		Deadline:     deadline,
		CreatedAt:    now,
		MonthlyGoals: []*MonthlyGoal{},
	}
	b.Goals = append(b.Goals, goal)
	return goal, nil
}

// AddMonthlyGoal appends a MonthlyGoal under the given BigGoal.
// It returns nil without error when the parent does not exist.
func (b *GoalBoard) AddMonthlyGoal(bigGoalID uuid.UUID, title string, targetDate time.Time) (*MonthlyGoal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domainerror.ErrMissingGoalFields
	}

	parent := b.FindBigGoal(bigGoalID)
	if parent == nil {
		return nil, nil
	}

	monthly := &MonthlyGoal{
		ID:          uuid.New(),
		BigGoalID:   parent.ID,
		Title:       title,
		TargetDate:  targetDate,
		WeeklyGoals: []*WeeklyGoal{},
	}
	parent.MonthlyGoals = append(parent.MonthlyGoals, monthly)
	return monthly, nil
}

// AddWeeklyGoal appends a WeeklyGoal under the first MonthlyGoal with the given id.
func (b *GoalBoard) AddWeeklyGoal(monthlyGoalID uuid.UUID, title string, targetDate time.Time) (*WeeklyGoal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domainerror.ErrMissingGoalFields
	}

	parent := b.findMonthlyGoal(monthlyGoalID)
	if parent == nil {
		return nil, nil
	}

	weekly := &WeeklyGoal{
		ID:            uuid.New(),
		MonthlyGoalID: parent.ID,
		Title:         title,
		TargetDate:    targetDate,
		DailyTasks:    []*DailyTask{},
	}
	parent.WeeklyGoals = append(parent.WeeklyGoals, weekly)
	return weekly, nil
}

// AddDailyTask appends a task dated to now's calendar day under the matching WeeklyGoal.
func (b *GoalBoard) AddDailyTask(weeklyGoalID uuid.UUID, title string, now time.Time) (*DailyTask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domainerror.ErrMissingGoalFields
	}

	parent := b.findWeeklyGoal(weeklyGoalID)
	if parent == nil {
		return nil, nil
	}

	task := &DailyTask{
		ID:           uuid.New(),
		WeeklyGoalID: parent.ID,
		Title:        title,
		Date:         DateKey(now),
	}
	parent.DailyTasks = append(parent.DailyTasks, task)
	return task, nil
}

// ToggleDailyTask flips the completed flag of a task. Unknown ids are ignored.
func (b *GoalBoard) ToggleDailyTask(taskID uuid.UUID) (*DailyTask, bool) {
	for _, goal := range b.Goals {
		for _, monthly := range goal.MonthlyGoals {
			for _, weekly := range monthly.WeeklyGoals {
				for _, task := range weekly.DailyTasks {
					if task.ID == taskID {
						task.Completed = !task.Completed
						return task, true
					}
				}
			}
		}
	}
	return nil, false
}

// ToggleMonthlyGoal flips the completed flag of a MonthlyGoal.
func (b *GoalBoard) ToggleMonthlyGoal(id uuid.UUID) (*MonthlyGoal, bool) {
	monthly := b.findMonthlyGoal(id)
	if monthly == nil {
		return nil, false
	}
	monthly.Completed = !monthly.Completed
	return monthly, true
}

// ToggleWeeklyGoal flips the completed flag of a WeeklyGoal.
func (b *GoalBoard) ToggleWeeklyGoal(id uuid.UUID) (*WeeklyGoal, bool) {
	weekly := b.findWeeklyGoal(id)
	if weekly == nil {
		return nil, false
	}
	weekly.Completed = !weekly.Completed
	return weekly, true
}

// UpdateCurrentValue sets a BigGoal's current value. The returned notification
// is non-nil only when this update moves the goal from below to at-or-above target.
func (b *GoalBoard) UpdateCurrentValue(goalID uuid.UUID, value float64, now time.Time) (*BigGoal, *GoalNotification, error) {
	if value < 0 {
		return nil, nil, domainerror.ErrInvalidCurrentValue
	}

	goal := b.FindBigGoal(goalID)
	if goal == nil {
		return nil, nil, nil
	}

	previous := goal.CurrentValue
	goal.CurrentValue = value

	if previous < goal.TargetValue && value >= goal.TargetValue {
		return goal, &GoalNotification{
			Kind:            NotificationGoalCompleted,
			GoalID:          goal.ID,
			Title:           goal.Title,
			AchievedPercent: int(math.Round(goal.Progress())),
			At:              now,
		}, nil
	}
	return goal, nil, nil
}

// DeleteBigGoal removes a BigGoal and its whole subtree.
func (b *GoalBoard) DeleteBigGoal(goalID uuid.UUID) bool {
	for i, goal := range b.Goals {
		if goal.ID == goalID {
			b.Goals = append(b.Goals[:i], b.Goals[i+1:]...)
			return true
		}
	}
	return false
}

// Evaluate removes every BigGoal whose deadline is strictly before now and
// returns one expiry notification per removed goal.
func (b *GoalBoard) Evaluate(now time.Time) []GoalNotification {
	var notifications []GoalNotification
	kept := make([]*BigGoal, 0, len(b.Goals))

	for _, goal := range b.Goals {
		if !goal.IsExpired(now) {
			kept = append(kept, goal)
			continue
		}
		notifications = append(notifications, GoalNotification{
			Kind:            NotificationGoalExpired,
			GoalID:          goal.ID,
			Title:           goal.Title,
			AchievedPercent: int(math.Round(goal.Progress())),
			At:              now,
		})
	}

	b.Goals = kept
	return notifications
}

// TodaysTasks returns every daily task dated to now's calendar day.
func (b *GoalBoard) TodaysTasks(now time.Time) []*DailyTask {
	today := DateKey(now)
	tasks := []*DailyTask{}
	for _, goal := range b.Goals {
		for _, monthly := range goal.MonthlyGoals {
			for _, weekly := range monthly.WeeklyGoals {
				for _, task := range weekly.DailyTasks {
					if task.Date == today {
						tasks = append(tasks, task)
					}
				}
			}
		}
	}
	return tasks
}

// FindBigGoal returns the BigGoal with the given id, or nil.
func (b *GoalBoard) FindBigGoal(id uuid.UUID) *BigGoal {
	for _, goal := range b.Goals {
		if goal.ID == id {
			return goal
		}
	}
	return nil
}

func (b *GoalBoard) findMonthlyGoal(id uuid.UUID) *MonthlyGoal {
	for _, goal := range b.Goals {
		for _, monthly := range goal.MonthlyGoals {
			if monthly.ID == id {
				return monthly
			}
		}
	}
	return nil
}

func (b *GoalBoard) findWeeklyGoal(id uuid.UUID) *WeeklyGoal {
	for _, goal := range b.Goals {
		for _, monthly := range goal.MonthlyGoals {
			for _, weekly := range monthly.WeeklyGoals {
				if weekly.ID == id {
					return weekly
				}
			}
		}
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// Snapshot documents are the JSON shapes written to the documents table.
// Calendar dates are stored as YYYY-MM-DD strings.

// GoalsDocument is the goals snapshot.
type GoalsDocument struct {
	Goals []BigGoalDocument `json:"goals"`
}

// BigGoalDocument is the stored form of a BigGoal.
type BigGoalDocument struct {
	ID           uuid.UUID             `json:"id"`
	Title        string                `json:"title"`
	TargetValue  float64               `json:"targetValue"`
	CurrentValue float64               `json:"currentValue"`
	Unit         string                `json:"unit"`
	Deadline     string                `json:"deadline"`
	CreatedAt    time.Time             `json:"createdAt"`
	MonthlyGoals []MonthlyGoalDocument `json:"monthlyGoals"`
}

// MonthlyGoalDocument is the stored form of a MonthlyGoal.
type MonthlyGoalDocument struct {
	ID          uuid.UUID            `json:"id"`
	BigGoalID   uuid.UUID            `json:"bigGoalId"`
	Title       string               `json:"title"`
	TargetDate  string               `json:"targetDate"`
	Completed   bool                 `json:"completed"`
	WeeklyGoals []WeeklyGoalDocument `json:"weeklyGoals"`
}

// WeeklyGoalDocument is the stored form of a WeeklyGoal.
type WeeklyGoalDocument struct {
	ID            uuid.UUID           `json:"id"`
	MonthlyGoalID uuid.UUID           `json:"monthlyGoalId"`
	Title         string              `json:"title"`
	TargetDate    string              `json:"targetDate"`
	Completed     bool                `json:"completed"`
	DailyTasks    []DailyTaskDocument `json:"dailyTasks"`
}

// DailyTaskDocument is the stored form of a DailyTask.
type DailyTaskDocument struct {
	ID           uuid.UUID `json:"id"`
	WeeklyGoalID uuid.UUID `json:"weeklyGoalId"`
	Title        string    `json:"title"`
	Completed    bool      `json:"completed"`
	Date         string    `json:"date"`
}

func parseStoredDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := entity.ParseDateKey(value, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func formatStoredDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return entity.DateKey(value)
}

// ToEntity converts the document into a GoalBoard.
func (d *GoalsDocument) ToEntity() *entity.GoalBoard {
	board := entity.NewGoalBoard()
	for _, g := range d.Goals {
		goal := &entity.BigGoal{
			ID:           g.ID,
			Title:        g.Title,
			TargetValue:  g.TargetValue,
			CurrentValue: g.CurrentValue,
			Unit:         g.Unit,
			Deadline:     parseStoredDate(g.Deadline),
			CreatedAt:    g.CreatedAt,
			MonthlyGoals: make([]*entity.MonthlyGoal, 0, len(g.MonthlyGoals)),
		}
		for _, m := range g.MonthlyGoals {
			monthly := &entity.MonthlyGoal{
				ID:          m.ID,
				BigGoalID:   m.BigGoalID,
				Title:       m.Title,
				TargetDate:  parseStoredDate(m.TargetDate),
				Completed:   m.Completed,
				WeeklyGoals: make([]*entity.WeeklyGoal, 0, len(m.WeeklyGoals)),
			}
			for _, w := range m.WeeklyGoals {
				weekly := &entity.WeeklyGoal{
					ID:            w.ID,
					MonthlyGoalID: w.MonthlyGoalID,
					Title:         w.Title,
					TargetDate:    parseStoredDate(w.TargetDate),
					Completed:     w.Completed,
					DailyTasks:    make([]*entity.DailyTask, 0, len(w.DailyTasks)),
				}
				for _, t := range w.DailyTasks {
					weekly.DailyTasks = append(weekly.DailyTasks, &entity.DailyTask{
						ID:           t.ID,
						WeeklyGoalID: t.WeeklyGoalID,
						Title:        t.Title,
						Completed:    t.Completed,
						Date:         t.Date,
					})
				}
				monthly.WeeklyGoals = append(monthly.WeeklyGoals, weekly)
			}
			goal.MonthlyGoals = append(goal.MonthlyGoals, monthly)
		}
		board.Goals = append(board.Goals, goal)
	}
	return board
}

// GoalsDocumentFromEntity converts a GoalBoard into its document.
func GoalsDocumentFromEntity(board *entity.GoalBoard) *GoalsDocument {
	doc := &GoalsDocument{Goals: make([]BigGoalDocument, 0, len(board.Goals))}
	for _, g := range board.Goals {
		goal := BigGoalDocument{
			ID:           g.ID,
			Title:        g.Title,
			TargetValue:  g.TargetValue,
			CurrentValue: g.CurrentValue,
			Unit:         g.Unit,
			Deadline:     formatStoredDate(g.Deadline),
			CreatedAt:    g.CreatedAt,
			MonthlyGoals: make([]MonthlyGoalDocument, 0, len(g.MonthlyGoals)),
		}
		for _, m := range g.MonthlyGoals {
			monthly := MonthlyGoalDocument{
				ID:          m.ID,
				BigGoalID:   m.BigGoalID,
				Title:       m.Title,
				TargetDate:  formatStoredDate(m.TargetDate),
				Completed:   m.Completed,
				WeeklyGoals: make([]WeeklyGoalDocument, 0, len(m.WeeklyGoals)),
			}
			for _, w := range m.WeeklyGoals {
				weekly := WeeklyGoalDocument{
					ID:            w.ID,
					MonthlyGoalID: w.MonthlyGoalID,
					Title:         w.Title,
					TargetDate:    formatStoredDate(w.TargetDate),
					Completed:     w.Completed,
					DailyTasks:    make([]DailyTaskDocument, 0, len(w.DailyTasks)),
				}
				for _, t := range w.DailyTasks {
					weekly.DailyTasks = append(weekly.DailyTasks, DailyTaskDocument{
						ID:           t.ID,
						WeeklyGoalID: t.WeeklyGoalID,
						Title:        t.Title,
						Completed:    t.Completed,
						Date:         t.Date,
					})
				}
				monthly.WeeklyGoals = append(monthly.WeeklyGoals, weekly)
			}
			goal.MonthlyGoals = append(goal.MonthlyGoals, monthly)
		}
		doc.Goals = append(doc.Goals, goal)
	}
	return doc
}

// HabitsDocument is the habits snapshot.
type HabitsDocument struct {
	Habits []HabitDocument `json:"habits"`
}

// HabitDocument is the stored form of a Habit.
type HabitDocument struct {
	Name            string             `json:"name"`
	TotalValue      float64            `json:"totalValue"`
	Unit            string             `json:"unit"`
	ConsecutiveDays int                `json:"consecutiveDays"`
	LastUpdated     time.Time          `json:"lastUpdated"`
	TodayValue      float64            `json:"todayValue"`
	DailyGoal       float64            `json:"dailyGoal"`
	History         map[string]float64 `json:"history"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// ToEntity converts the document into a HabitBook.
func (d *HabitsDocument) ToEntity() *entity.HabitBook {
	book := entity.NewHabitBook()
	for _, h := range d.Habits {
		history := h.History
		if history == nil {
			history = map[string]float64{}
		}
		book.Habits = append(book.Habits, &entity.Habit{
			Name:            h.Name,
			TotalValue:      h.TotalValue,
			Unit:            h.Unit,
			ConsecutiveDays: h.ConsecutiveDays,
			LastUpdated:     h.LastUpdated,
			TodayValue:      h.TodayValue,
			DailyGoal:       h.DailyGoal,
			History:         history,
			CreatedAt:       h.CreatedAt,
		})
	}
	return book
}

// HabitsDocumentFromEntity converts a HabitBook into its document.
func HabitsDocumentFromEntity(book *entity.HabitBook) *HabitsDocument {
	doc := &HabitsDocument{Habits: make([]HabitDocument, 0, len(book.Habits))}
	for _, h := range book.Habits {
		doc.Habits = append(doc.Habits, HabitDocument{
			Name:            h.Name,
			TotalValue:      h.TotalValue,
			Unit:            h.Unit,
			ConsecutiveDays: h.ConsecutiveDays,
			LastUpdated:     h.LastUpdated,
			TodayValue:      h.TodayValue,
			DailyGoal:       h.DailyGoal,
			History:         h.History,
			CreatedAt:       h.CreatedAt,
		})
	}
	return doc
}

// TodosDocument is the todos snapshot.
type TodosDocument struct {
	Todos []TodoDocument `json:"todos"`
}

// TodoDocument is the stored form of a Todo.
type TodoDocument struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// ToEntity converts the document into a TodoList.
func (d *TodosDocument) ToEntity() *entity.TodoList {
	list := entity.NewTodoList()
	for _, t := range d.Todos {
		var due *time.Time
		if t.DueDate != "" {
			parsed := parseStoredDate(t.DueDate)
			due = &parsed
		}
		priority, err := entity.ParsePriority(t.Priority)
		if err != nil {
			priority = entity.PriorityNone
		}
		list.Todos = append(list.Todos, &entity.Todo{
			ID:          t.ID,
			Title:       t.Title,
			Completed:   t.Completed,
			Priority:    priority,
			Category:    t.Category,
			DueDate:     due,
			CreatedAt:   t.CreatedAt,
			CompletedAt: t.CompletedAt,
		})
	}
	return list
}

// TodosDocumentFromEntity converts a TodoList into its document.
func TodosDocumentFromEntity(list *entity.TodoList) *TodosDocument {
	doc := &TodosDocument{Todos: make([]TodoDocument, 0, len(list.Todos))}
	for _, t := range list.Todos {
		item := TodoDocument{
			ID:          t.ID,
			Title:       t.Title,
			Completed:   t.Completed,
			Priority:    string(t.Priority),
			Category:    t.Category,
			CreatedAt:   t.CreatedAt,
			CompletedAt: t.CompletedAt,
		}
		if t.DueDate != nil {
			item.DueDate = formatStoredDate(*t.DueDate)
		}
		doc.Todos = append(doc.Todos, item)
	}
	return doc
}

// ItemDetailsDocument is the stored, date-agnostic content of a schedule entry.
type ItemDetailsDocument struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Title     string `json:"title"`
	IsHabit   bool   `json:"isHabit"`
	HabitName string `json:"habitName,omitempty"`
	Category  string `json:"category,omitempty"`
	Priority  string `json:"priority,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

func (d ItemDetailsDocument) toEntity() entity.ItemDetails {
	priority, err := entity.ParsePriority(d.Priority)
	if err != nil {
		priority = entity.PriorityNone
	}
	return entity.ItemDetails{
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Title:     d.Title,
		IsHabit:   d.IsHabit,
		HabitName: d.HabitName,
		Category:  d.Category,
		Priority:  priority,
		Notes:     d.Notes,
	}
}

func itemDetailsDocument(d entity.ItemDetails) ItemDetailsDocument {
	return ItemDetailsDocument{
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Title:     d.Title,
		IsHabit:   d.IsHabit,
		HabitName: d.HabitName,
		Category:  d.Category,
		Priority:  string(d.Priority),
		Notes:     d.Notes,
	}
}

// ScheduleDocument is the schedule-items-for-all-dates snapshot.
type ScheduleDocument struct {
	Items []ScheduleItemDocument `json:"items"`
}

// ScheduleItemDocument is the stored form of a ScheduleItem.
type ScheduleItemDocument struct {
	ID uuid.UUID `json:"id"`
	ItemDetailsDocument
	Completed bool      `json:"completed"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToEntity converts the document into a Schedule.
func (d *ScheduleDocument) ToEntity() *entity.Schedule {
	schedule := entity.NewSchedule()
	for _, item := range d.Items {
		schedule.Items = append(schedule.Items, &entity.ScheduleItem{
			ID:          item.ID,
			ItemDetails: item.ItemDetailsDocument.toEntity(),
			Completed:   item.Completed,
			Date:        item.Date,
			CreatedAt:   item.CreatedAt,
		})
	}
	return schedule
}

// ScheduleDocumentFromEntity converts a Schedule into its document.
func ScheduleDocumentFromEntity(schedule *entity.Schedule) *ScheduleDocument {
	doc := &ScheduleDocument{Items: make([]ScheduleItemDocument, 0, len(schedule.Items))}
	for _, item := range schedule.Items {
		doc.Items = append(doc.Items, ScheduleItemDocument{
			ID:                  item.ID,
			ItemDetailsDocument: itemDetailsDocument(item.ItemDetails),
			Completed:           item.Completed,
			Date:                item.Date,
			CreatedAt:           item.CreatedAt,
		})
	}
	return doc
}

// TemplatesDocument is the templates snapshot.
type TemplatesDocument struct {
	Templates []TemplateDocument `json:"templates"`
}

// TemplateDocument is the stored form of a Template.
type TemplateDocument struct {
	ID        uuid.UUID             `json:"id"`
	Name      string                `json:"name"`
	Items     []ItemDetailsDocument `json:"items"`
	CreatedAt time.Time             `json:"createdAt"`
}

// ToEntity converts the document into a TemplateSet.
func (d *TemplatesDocument) ToEntity() *entity.TemplateSet {
	set := entity.NewTemplateSet()
	for _, t := range d.Templates {
		entries := make([]entity.TemplateEntry, 0, len(t.Items))
		for _, item := range t.Items {
			entries = append(entries, item.toEntity())
		}
		set.Templates = append(set.Templates, &entity.Template{
			ID:        t.ID,
			Name:      t.Name,
			Entries:   entries,
			CreatedAt: t.CreatedAt,
		})
	}
	return set
}

// TemplatesDocumentFromEntity converts a TemplateSet into its document.
func TemplatesDocumentFromEntity(set *entity.TemplateSet) *TemplatesDocument {
	doc := &TemplatesDocument{Templates: make([]TemplateDocument, 0, len(set.Templates))}
	for _, t := range set.Templates {
		items := make([]ItemDetailsDocument, 0, len(t.Entries))
		for _, entry := range t.Entries {
			items = append(items, itemDetailsDocument(entry))
		}
		doc.Templates = append(doc.Templates, TemplateDocument{
			ID:        t.ID,
			Name:      t.Name,
			Items:     items,
			CreatedAt: t.CreatedAt,
		})
	}
	return doc
}

// SavedItemsDocument is the reusable schedule-item snapshot.
type SavedItemsDocument struct {
	Items []SavedItemDocument `json:"items"`
}

// SavedItemDocument is the stored form of a SavedItem.
type SavedItemDocument struct {
	ID uuid.UUID `json:"id"`
	ItemDetailsDocument
	CreatedAt time.Time `json:"createdAt"`
}

// ToEntity converts the document into a SavedItemSet.
func (d *SavedItemsDocument) ToEntity() *entity.SavedItemSet {
	set := entity.NewSavedItemSet()
	for _, item := range d.Items {
		set.Items = append(set.Items, &entity.SavedItem{
			ID:          item.ID,
			ItemDetails: item.ItemDetailsDocument.toEntity(),
			CreatedAt:   item.CreatedAt,
		})
	}
	return set
}

// SavedItemsDocumentFromEntity converts a SavedItemSet into its document.
func SavedItemsDocumentFromEntity(set *entity.SavedItemSet) *SavedItemsDocument {
	doc := &SavedItemsDocument{Items: make([]SavedItemDocument, 0, len(set.Items))}
	for _, item := range set.Items {
		doc.Items = append(doc.Items, SavedItemDocument{
			ID:                  item.ID,
			ItemDetailsDocument: itemDetailsDocument(item.ItemDetails),
			CreatedAt:           item.CreatedAt,
		})
	}
	return doc
}

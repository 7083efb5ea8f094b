package entity

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsClockTime reports whether value is a zero-padded HH:MM wall-clock time.
func IsClockTime(value string) bool {
	return clockPattern.MatchString(value)
}

// ValidateTimeRange checks both bounds and that end is after start.
// Zero-padded HH:MM strings order lexicographically the same as chronologically.
func ValidateTimeRange(start, end string) error {
	if !IsClockTime(start) || !IsClockTime(end) {
		return domainerror.ErrInvalidTimeFormat
	}
	if end <= start {
		return domainerror.ErrInvalidTimeRange
	}
	return nil
}

// ItemDetails is the date-agnostic content shared by schedule items, template entries and saved items.
type ItemDetails struct {
	StartTime string
	EndTime   string
	Title     string
	IsHabit   bool
	HabitName string // Weak reference to a Habit by name
	Category  string
	Priority  Priority
	Notes     string
}

// Validate checks the title and time range.
func (d ItemDetails) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return domainerror.ErrMissingScheduleTitle
	}
	if d.IsHabit && strings.TrimSpace(d.HabitName) == "" {
		return domainerror.ErrMissingHabitReference
	}
	return ValidateTimeRange(d.StartTime, d.EndTime)
}

func (d ItemDetails) normalized() ItemDetails {
	d.Title = strings.TrimSpace(d.Title)
	d.HabitName = strings.TrimSpace(d.HabitName)
	d.Category = strings.TrimSpace(d.Category)
	if !d.IsHabit {
		d.HabitName = ""
	}
	if d.Priority == "" {
		d.Priority = PriorityNone
	}
	return d
}

// ScheduleItem is a time block on a specific day.
type ScheduleItem struct {
	ID uuid.UUID
	ItemDetails
	Completed bool
	Date      string
	CreatedAt time.Time
}

// TemplateEntry is one date-agnostic entry of a Template.
type TemplateEntry = ItemDetails

// Template is a reusable, ordered day pattern.
type Template struct {
	ID        uuid.UUID
	Name      string
	Entries   []TemplateEntry
	CreatedAt time.Time
}

// SavedItem is a reusable single schedule entry.
type SavedItem struct {
	ID uuid.UUID
	ItemDetails
	CreatedAt time.Time
}

// Schedule holds every schedule item for all dates.
type Schedule struct {
	Items []*ScheduleItem
}

// NewSchedule creates an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{Items: []*ScheduleItem{}}
}

// AddItem validates and appends an item for the given date.
func (s *Schedule) AddItem(details ItemDetails, date string, now time.Time) (*ScheduleItem, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, domainerror.ErrInvalidScheduleDate
	}

	item := &ScheduleItem{
		ID:          uuid.New(),
		ItemDetails: details.normalized(),
		Date:        date,
		CreatedAt:   now,
	}
	s.Items = append(s.Items, item)
	return item, nil
}

// UpdateItem replaces an item's details after validation.
func (s *Schedule) UpdateItem(id uuid.UUID, details ItemDetails) (*ScheduleItem, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}
	item := s.Find(id)
	if item == nil {
		return nil, nil
	}
	item.ItemDetails = details.normalized()
	return item, nil
}

// ToggleItem flips an item's completed flag.
func (s *Schedule) ToggleItem(id uuid.UUID) (*ScheduleItem, bool) {
	item := s.Find(id)
	if item == nil {
		return nil, false
	}
	item.Completed = !item.Completed
	return item, true
}

// RemoveItem deletes an item.
func (s *Schedule) RemoveItem(id uuid.UUID) bool {
	for i, item := range s.Items {
		if item.ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the item with the given id, or nil.
func (s *Schedule) Find(id uuid.UUID) *ScheduleItem {
	for _, item := range s.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// ItemsOn returns the items of one date sorted by start time.
func (s *Schedule) ItemsOn(date string) []*ScheduleItem {
	items := []*ScheduleItem{}
	for _, item := range s.Items {
		if item.Date == date {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartTime < items[j].StartTime
	})
	return items
}

// ApplyTemplate replaces every item dated today with fresh, uncompleted copies of the template entries.
func (s *Schedule) ApplyTemplate(template *Template, now time.Time) []*ScheduleItem {
	today := DateKey(now)

	kept := make([]*ScheduleItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.Date != today {
			kept = append(kept, item)
		}
	}

	created := make([]*ScheduleItem, 0, len(template.Entries))
	for _, entry := range template.Entries {
		created = append(created, &ScheduleItem{
			ID:          uuid.New(),
			ItemDetails: entry.normalized(),
			Completed:   false,
			Date:        today,
			CreatedAt:   now,
		})
	}

	s.Items = append(kept, created...)
	return created
}

// NewTemplate validates every entry and builds a template.
func NewTemplate(name string, entries []TemplateEntry, now time.Time) (*Template, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerror.ErrMissingTemplateName
	}
	if len(entries) == 0 {
		return nil, domainerror.ErrEmptyTemplate
	}

	normalized := make([]TemplateEntry, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		normalized = append(normalized, entry.normalized())
	}

	return &Template{
		ID:        uuid.New(),
		Name:      name,
		Entries:   normalized,
		CreatedAt: now,
	}, nil
}

// TemplateFromItems copies the details of the given items into template entries.
func TemplateFromItems(items []*ScheduleItem) []TemplateEntry {
	entries := make([]TemplateEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, item.ItemDetails)
	}
	return entries
}

// TemplateSet is a user's templates.
type TemplateSet struct {
	Templates []*Template
}

// NewTemplateSet creates an empty template set.
func NewTemplateSet() *TemplateSet {
	return &TemplateSet{Templates: []*Template{}}
}

// Add appends a template.
func (t *TemplateSet) Add(template *Template) {
	t.Templates = append(t.Templates, template)
}

// Find returns the template with the given id, or nil.
func (t *TemplateSet) Find(id uuid.UUID) *Template {
	for _, template := range t.Templates {
		if template.ID == id {
			return template
		}
	}
	return nil
}

// Remove deletes a template.
func (t *TemplateSet) Remove(id uuid.UUID) bool {
	for i, template := range t.Templates {
		if template.ID == id {
			t.Templates = append(t.Templates[:i], t.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// SavedItemSet is a user's collection of reusable schedule entries.
type SavedItemSet struct {
	Items []*SavedItem
}

// NewSavedItemSet creates an empty collection.
func NewSavedItemSet() *SavedItemSet {
	return &SavedItemSet{Items: []*SavedItem{}}
}

// Save validates and appends a reusable entry.
func (s *SavedItemSet) Save(details ItemDetails, now time.Time) (*SavedItem, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}
	item := &SavedItem{
		ID:          uuid.New(),
		ItemDetails: details.normalized(),
		CreatedAt:   now,
	}
	s.Items = append(s.Items, item)
	return item, nil
}

// Find returns the saved item with the given id, or nil.
func (s *SavedItemSet) Find(id uuid.UUID) *SavedItem {
	for _, item := range s.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Remove deletes a saved item.
func (s *SavedItemSet) Remove(id uuid.UUID) bool {
	for i, item := range s.Items {
		if item.ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}
	return false
}

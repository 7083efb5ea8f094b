package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ScheduleItemRequest is the date-agnostic content of a schedule item, template entry or saved item.
type ScheduleItemRequest struct {
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
	Title     string `json:"title" binding:"required,max=200"`
	IsHabit   bool   `json:"is_habit"`
	HabitName string `json:"habit_name" binding:"max=100"`
	Category  string `json:"category" binding:"max=50"`
	Priority  string `json:"priority" binding:"omitempty,priority"`
	Notes     string `json:"notes" binding:"max=1000"`
}

// AddScheduleItemRequest adds an item on date, or today when date is empty.
type AddScheduleItemRequest struct {
	ScheduleItemRequest
	Date string `json:"date" binding:"omitempty,datekey"`
}

// CreateTemplateRequest creates a template from explicit entries.
type CreateTemplateRequest struct {
	Name    string                `json:"name" binding:"required,max=100"`
	Entries []ScheduleItemRequest `json:"entries" binding:"required,min=1,dive"`
}

// CreateTemplateFromDayRequest snapshots a day's schedule into a template.
type CreateTemplateFromDayRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Date string `json:"date" binding:"omitempty,datekey"`
}

// ScheduleSavedItemRequest places a saved item on a day.
type ScheduleSavedItemRequest struct {
	Date string `json:"date" binding:"omitempty,datekey"`
}

// ScheduleItemResponse represents a schedule item in API responses.
type ScheduleItemResponse struct {
	ID        string         `json:"id"`
	Date      string         `json:"date"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	Title     string         `json:"title"`
	IsHabit   bool           `json:"is_habit"`
	HabitName string         `json:"habit_name,omitempty"`
	Category  string         `json:"category,omitempty"`
	Priority  string         `json:"priority"`
	Notes     string         `json:"notes,omitempty"`
	Completed bool           `json:"completed"`
	CreatedAt time.Time      `json:"created_at"`
	Habit     *HabitResponse `json:"habit,omitempty"`
}

// ScheduleDayResponse lists a day's items by start time.
type ScheduleDayResponse struct {
	Date  string                 `json:"date"`
	Items []ScheduleItemResponse `json:"items"`
}

// TemplateEntryResponse represents one template entry.
type TemplateEntryResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Title     string `json:"title"`
	IsHabit   bool   `json:"is_habit"`
	HabitName string `json:"habit_name,omitempty"`
	Category  string `json:"category,omitempty"`
	Priority  string `json:"priority"`
	Notes     string `json:"notes,omitempty"`
}

// TemplateResponse represents a template in API responses.
type TemplateResponse struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Entries   []TemplateEntryResponse `json:"entries"`
	CreatedAt time.Time               `json:"created_at"`
}

// TemplateListResponse lists templates.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// SavedItemResponse represents a saved item.
type SavedItemResponse struct {
	ID string `json:"id"`
	TemplateEntryResponse
	CreatedAt time.Time `json:"created_at"`
}

// SavedItemListResponse lists saved items.
type SavedItemListResponse struct {
	Items []SavedItemResponse `json:"items"`
}

func toTemplateEntryResponse(d entity.ItemDetails) TemplateEntryResponse {
	return TemplateEntryResponse{
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

// ToScheduleItemResponse converts a ScheduleItem. habit is the resolved habit, if any.
func ToScheduleItemResponse(item *entity.ScheduleItem, habit *entity.Habit) ScheduleItemResponse {
	resp := ScheduleItemResponse{
		ID:        item.ID.String(),
		Date:      item.Date,
		StartTime: item.StartTime,
		EndTime:   item.EndTime,
		Title:     item.Title,
		IsHabit:   item.IsHabit,
		HabitName: item.HabitName,
		Category:  item.Category,
		Priority:  string(item.Priority),
		Notes:     item.Notes,
		Completed: item.Completed,
		CreatedAt: item.CreatedAt,
	}
	if habit != nil {
		h := ToHabitResponse(habit)
		resp.Habit = &h
	}
	return resp
}

// ToScheduleItemResponses converts items without habit resolution.
func ToScheduleItemResponses(items []*entity.ScheduleItem) []ScheduleItemResponse {
	resp := make([]ScheduleItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, ToScheduleItemResponse(item, nil))
	}
	return resp
}

// ToTemplateResponse converts a Template.
func ToTemplateResponse(template *entity.Template) TemplateResponse {
	resp := TemplateResponse{
		ID:        template.ID.String(),
		Name:      template.Name,
		Entries:   make([]TemplateEntryResponse, 0, len(template.Entries)),
		CreatedAt: template.CreatedAt,
	}
	for _, entry := range template.Entries {
		resp.Entries = append(resp.Entries, toTemplateEntryResponse(entry))
	}
	return resp
}

// ToTemplateListResponse converts a slice of templates.
func ToTemplateListResponse(templates []*entity.Template) TemplateListResponse {
	resp := TemplateListResponse{Templates: make([]TemplateResponse, 0, len(templates))}
	for _, t := range templates {
		resp.Templates = append(resp.Templates, ToTemplateResponse(t))
	}
	return resp
}

// ToSavedItemResponse converts a SavedItem.
func ToSavedItemResponse(item *entity.SavedItem) SavedItemResponse {
	return SavedItemResponse{
		ID:                    item.ID.String(),
		TemplateEntryResponse: toTemplateEntryResponse(item.ItemDetails),
		CreatedAt:             item.CreatedAt,
	}
}

// ToSavedItemListResponse converts a slice of saved items.
func ToSavedItemListResponse(items []*entity.SavedItem) SavedItemListResponse {
	resp := SavedItemListResponse{Items: make([]SavedItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, ToSavedItemResponse(item))
	}
	return resp
}

package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for creating a habit.
type CreateHabitRequest struct {
	Name      string  `json:"name" binding:"required,max=100"`
	Unit      string  `json:"unit" binding:"required,max=50"`
	DailyGoal float64 `json:"daily_goal"`
}

// UpdateHabitRequest replaces the unit label and daily goal.
type UpdateHabitRequest struct {
	Unit      string  `json:"unit" binding:"required,max=50"`
	DailyGoal float64 `json:"daily_goal"`
}

// RecordProgressRequest adds an amount to today's value.
type RecordProgressRequest struct {
	Amount float64 `json:"amount"`
}

// CompleteSessionRequest reports a finished focus session.
type CompleteSessionRequest struct {
	ElapsedSeconds int `json:"elapsed_seconds"`
}

// HabitResponse represents a habit in API responses.
type HabitResponse struct {
	Name            string             `json:"name"`
	Unit            string             `json:"unit"`
	TotalValue      float64            `json:"total_value"`
	TodayValue      float64            `json:"today_value"`
	DailyGoal       float64            `json:"daily_goal"`
	ConsecutiveDays int                `json:"consecutive_days"`
	Progress        float64            `json:"progress"`
	History         map[string]float64 `json:"history"`
	LastUpdated     time.Time          `json:"last_updated"`
	CreatedAt       time.Time          `json:"created_at"`
}

// HabitListResponse lists habits after the daily rollover.
type HabitListResponse struct {
	Today  string          `json:"today"`
	Habits []HabitResponse `json:"habits"`
}

// SessionResponse reports the minutes a focus session recorded.
type SessionResponse struct {
	Habit           HabitResponse `json:"habit"`
	RecordedMinutes int           `json:"recorded_minutes"`
}

// ToHabitResponse converts a Habit entity.
func ToHabitResponse(habit *entity.Habit) HabitResponse {
	history := habit.History
	if history == nil {
		history = map[string]float64{}
	}
	return HabitResponse{
		Name:            habit.Name,
		Unit:            habit.Unit,
		TotalValue:      habit.TotalValue,
		TodayValue:      habit.TodayValue,
		DailyGoal:       habit.DailyGoal,
		ConsecutiveDays: habit.ConsecutiveDays,
		Progress:        percent(habit.ProgressPercentage()),
		History:         history,
		LastUpdated:     habit.LastUpdated,
		CreatedAt:       habit.CreatedAt,
	}
}

// ToHabitListResponse converts the rolled-over habit list.
func ToHabitListResponse(today string, habits []*entity.Habit) HabitListResponse {
	resp := HabitListResponse{Today: today, Habits: make([]HabitResponse, 0, len(habits))}
	for _, h := range habits {
		resp.Habits = append(resp.Habits, ToHabitResponse(h))
	}
	return resp
}

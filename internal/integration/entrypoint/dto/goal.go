package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for creating a big goal.
type CreateGoalRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	TargetValue float64 `json:"target_value"`
	Unit        string  `json:"unit" binding:"required,max=50"`
	Deadline    string  `json:"deadline" binding:"required,datekey"`
}

// UpdateGoalProgressRequest sets a big goal's current value.
type UpdateGoalProgressRequest struct {
	CurrentValue *float64 `json:"current_value" binding:"required"`
}

// AddMilestoneRequest adds a monthly goal under a big goal or a weekly goal under a monthly goal.
type AddMilestoneRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	TargetDate string `json:"target_date" binding:"required,datekey"`
}

// AddDailyTaskRequest adds a task for today under a weekly goal.
type AddDailyTaskRequest struct {
	Title string `json:"title" binding:"required,max=200"`
}

// BigGoalResponse represents a big goal with its whole subtree.
type BigGoalResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	TargetValue  float64               `json:"target_value"`
	CurrentValue float64               `json:"current_value"`
	Unit         string                `json:"unit"`
	Deadline     string                `json:"deadline"`
	Progress     float64               `json:"progress"`
	CreatedAt    time.Time             `json:"created_at"`
	MonthlyGoals []MonthlyGoalResponse `json:"monthly_goals"`
}

// MonthlyGoalResponse represents a monthly goal.
type MonthlyGoalResponse struct {
	ID          string               `json:"id"`
	BigGoalID   string               `json:"big_goal_id"`
	Title       string               `json:"title"`
	TargetDate  string               `json:"target_date"`
	Completed   bool                 `json:"completed"`
	Progress    float64              `json:"progress"`
	WeeklyGoals []WeeklyGoalResponse `json:"weekly_goals"`
}

// WeeklyGoalResponse represents a weekly goal.
type WeeklyGoalResponse struct {
	ID            string              `json:"id"`
	MonthlyGoalID string              `json:"monthly_goal_id"`
	Title         string              `json:"title"`
	TargetDate    string              `json:"target_date"`
	Completed     bool                `json:"completed"`
	Progress      float64             `json:"progress"`
	DailyTasks    []DailyTaskResponse `json:"daily_tasks"`
}

// DailyTaskResponse represents a daily task.
type DailyTaskResponse struct {
	ID           string `json:"id"`
	WeeklyGoalID string `json:"weekly_goal_id"`
	Title        string `json:"title"`
	Completed    bool   `json:"completed"`
	Date         string `json:"date"`
}

// GoalNotificationResponse represents a completed or expired goal event.
type GoalNotificationResponse struct {
	Kind            string    `json:"kind"`
	GoalID          string    `json:"goal_id"`
	Title           string    `json:"title"`
	AchievedPercent int       `json:"achieved_percent"`
	At              time.Time `json:"at"`
}

// GoalListResponse is the board after the expiry sweep.
type GoalListResponse struct {
	Goals         []BigGoalResponse          `json:"goals"`
	Notifications []GoalNotificationResponse `json:"notifications"`
}

// GoalProgressResponse carries the goal and the completion event, if one fired.
type GoalProgressResponse struct {
	Goal      BigGoalResponse           `json:"goal"`
	Completed *GoalNotificationResponse `json:"completed,omitempty"`
}

// TodayTasksResponse lists the tasks dated today.
type TodayTasksResponse struct {
	Date  string              `json:"date"`
	Tasks []DailyTaskResponse `json:"tasks"`
}

// ToBigGoalResponse converts a BigGoal and its subtree.
func ToBigGoalResponse(goal *entity.BigGoal) BigGoalResponse {
	resp := BigGoalResponse{
		ID:           goal.ID.String(),
		Title:        goal.Title,
		TargetValue:  goal.TargetValue,
		CurrentValue: goal.CurrentValue,
		Unit:         goal.Unit,
		Deadline:     dateString(goal.Deadline),
		Progress:     percent(goal.Progress()),
		CreatedAt:    goal.CreatedAt,
		MonthlyGoals: make([]MonthlyGoalResponse, 0, len(goal.MonthlyGoals)),
	}
	for _, m := range goal.MonthlyGoals {
		resp.MonthlyGoals = append(resp.MonthlyGoals, ToMonthlyGoalResponse(m))
	}
	return resp
}

// ToMonthlyGoalResponse converts a MonthlyGoal and its subtree.
func ToMonthlyGoalResponse(goal *entity.MonthlyGoal) MonthlyGoalResponse {
	resp := MonthlyGoalResponse{
		ID:          goal.ID.String(),
		BigGoalID:   goal.BigGoalID.String(),
		Title:       goal.Title,
		TargetDate:  dateString(goal.TargetDate),
		Completed:   goal.Completed,
		Progress:    percent(goal.Progress()),
		WeeklyGoals: make([]WeeklyGoalResponse, 0, len(goal.WeeklyGoals)),
	}
	for _, w := range goal.WeeklyGoals {
		resp.WeeklyGoals = append(resp.WeeklyGoals, ToWeeklyGoalResponse(w))
	}
	return resp
}

// ToWeeklyGoalResponse converts a WeeklyGoal and its tasks.
func ToWeeklyGoalResponse(goal *entity.WeeklyGoal) WeeklyGoalResponse {
	return WeeklyGoalResponse{
		ID:            goal.ID.String(),
		MonthlyGoalID: goal.MonthlyGoalID.String(),
		Title:         goal.Title,
		TargetDate:    dateString(goal.TargetDate),
		Completed:     goal.Completed,
		Progress:      percent(goal.Progress()),
		DailyTasks:    ToDailyTaskResponses(goal.DailyTasks),
	}
}

// ToDailyTaskResponses converts a slice of tasks.
func ToDailyTaskResponses(tasks []*entity.DailyTask) []DailyTaskResponse {
	resp := make([]DailyTaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, ToDailyTaskResponse(t))
	}
	return resp
}

// ToDailyTaskResponse converts a DailyTask.
func ToDailyTaskResponse(task *entity.DailyTask) DailyTaskResponse {
	return DailyTaskResponse{
		ID:           task.ID.String(),
		WeeklyGoalID: task.WeeklyGoalID.String(),
		Title:        task.Title,
		Completed:    task.Completed,
		Date:         task.Date,
	}
}

// ToGoalNotificationResponse converts a GoalNotification.
func ToGoalNotificationResponse(n entity.GoalNotification) GoalNotificationResponse {
	return GoalNotificationResponse{
		Kind:            string(n.Kind),
		GoalID:          n.GoalID.String(),
		Title:           n.Title,
		AchievedPercent: n.AchievedPercent,
		At:              n.At,
	}
}

// ToGoalListResponse converts the evaluated board.
func ToGoalListResponse(goals []*entity.BigGoal, notifications []entity.GoalNotification) GoalListResponse {
	resp := GoalListResponse{
		Goals:         make([]BigGoalResponse, 0, len(goals)),
		Notifications: make([]GoalNotificationResponse, 0, len(notifications)),
	}
	for _, g := range goals {
		resp.Goals = append(resp.Goals, ToBigGoalResponse(g))
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, ToGoalNotificationResponse(n))
	}
	return resp
}

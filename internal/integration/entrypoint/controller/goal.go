package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/goal"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// GoalController handles the goal hierarchy endpoints.
type GoalController struct {
	listUseCase           *goal.ListGoalsUseCase
	createUseCase         *goal.CreateGoalUseCase
	deleteUseCase         *goal.DeleteGoalUseCase
	updateProgressUseCase *goal.UpdateProgressUseCase
	addMonthlyUseCase     *goal.AddMonthlyGoalUseCase
	addWeeklyUseCase      *goal.AddWeeklyGoalUseCase
	addDailyTaskUseCase   *goal.AddDailyTaskUseCase
	toggleUseCase         *goal.ToggleUseCase
	todayTasksUseCase     *goal.ListTodayTasksUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	updateProgressUseCase *goal.UpdateProgressUseCase,
	addMonthlyUseCase *goal.AddMonthlyGoalUseCase,
	addWeeklyUseCase *goal.AddWeeklyGoalUseCase,
	addDailyTaskUseCase *goal.AddDailyTaskUseCase,
	toggleUseCase *goal.ToggleUseCase,
	todayTasksUseCase *goal.ListTodayTasksUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:           listUseCase,
		createUseCase:         createUseCase,
		deleteUseCase:         deleteUseCase,
		updateProgressUseCase: updateProgressUseCase,
		addMonthlyUseCase:     addMonthlyUseCase,
		addWeeklyUseCase:      addWeeklyUseCase,
		addDailyTaskUseCase:   addDailyTaskUseCase,
		toggleUseCase:         toggleUseCase,
		todayTasksUseCase:     todayTasksUseCase,
	}
}

// List handles GET /goals. Expired goals are removed before the board is returned.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals, output.Notifications))
}

// Create handles POST /goals.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingGoalFields)) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:      userID,
		Title:       req.Title,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		Deadline:    req.Deadline,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToBigGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidGoalID))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{UserID: userID, GoalID: goalID}); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// UpdateProgress handles PATCH /goals/:id/progress.
func (c *GoalController) UpdateProgress(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidGoalID))
	if !ok {
		return
	}

	var req dto.UpdateGoalProgressRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeInvalidCurrentValue)) {
		return
	}

	output, err := c.updateProgressUseCase.Execute(ctx.Request.Context(), goal.UpdateProgressInput{
		UserID:       userID,
		GoalID:       goalID,
		CurrentValue: *req.CurrentValue,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := dto.GoalProgressResponse{Goal: dto.ToBigGoalResponse(output.Goal)}
	if output.Completed != nil {
		completed := dto.ToGoalNotificationResponse(*output.Completed)
		response.Completed = &completed
	}
	ctx.JSON(http.StatusOK, response)
}

// AddMonthlyGoal handles POST /goals/:id/monthly-goals.
func (c *GoalController) AddMonthlyGoal(ctx *gin.Context) {
	input, ok := c.milestoneInput(ctx)
	if !ok {
		return
	}

	output, err := c.addMonthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToMonthlyGoalResponse(output.MonthlyGoal))
}

// AddWeeklyGoal handles POST /monthly-goals/:id/weekly-goals.
func (c *GoalController) AddWeeklyGoal(ctx *gin.Context) {
	input, ok := c.milestoneInput(ctx)
	if !ok {
		return
	}

	output, err := c.addWeeklyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToWeeklyGoalResponse(output.WeeklyGoal))
}

func (c *GoalController) milestoneInput(ctx *gin.Context) (goal.AddMilestoneInput, bool) {
	userID, ok := requireUser(ctx)
	if !ok {
		return goal.AddMilestoneInput{}, false
	}
	parentID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidGoalID))
	if !ok {
		return goal.AddMilestoneInput{}, false
	}

	var req dto.AddMilestoneRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingGoalFields)) {
		return goal.AddMilestoneInput{}, false
	}

	return goal.AddMilestoneInput{
		UserID:     userID,
		ParentID:   parentID,
		Title:      req.Title,
		TargetDate: req.TargetDate,
	}, true
}

// AddDailyTask handles POST /weekly-goals/:id/daily-tasks.
func (c *GoalController) AddDailyTask(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	weeklyGoalID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidGoalID))
	if !ok {
		return
	}

	var req dto.AddDailyTaskRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingGoalFields)) {
		return
	}

	output, err := c.addDailyTaskUseCase.Execute(ctx.Request.Context(), goal.AddDailyTaskInput{
		UserID:       userID,
		WeeklyGoalID: weeklyGoalID,
		Title:        req.Title,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToDailyTaskResponse(output.Task))
}

// ToggleMonthlyGoal handles POST /monthly-goals/:id/toggle.
func (c *GoalController) ToggleMonthlyGoal(ctx *gin.Context) {
	c.toggle(ctx, goal.ToggleMonthlyGoal)
}

// ToggleWeeklyGoal handles POST /weekly-goals/:id/toggle.
func (c *GoalController) ToggleWeeklyGoal(ctx *gin.Context) {
	c.toggle(ctx, goal.ToggleWeeklyGoal)
}

// ToggleDailyTask handles POST /daily-tasks/:id/toggle.
func (c *GoalController) ToggleDailyTask(ctx *gin.Context) {
	c.toggle(ctx, goal.ToggleDailyTask)
}

func (c *GoalController) toggle(ctx *gin.Context, target goal.ToggleTarget) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, string(domainerror.ErrCodeInvalidGoalID))
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), goal.ToggleInput{UserID: userID, Target: target, ID: id})
	if err != nil {
		respondError(ctx, err)
		return
	}

	switch {
	case output.DailyTask != nil:
		ctx.JSON(http.StatusOK, dto.ToDailyTaskResponse(output.DailyTask))
	case output.WeeklyGoal != nil:
		ctx.JSON(http.StatusOK, dto.ToWeeklyGoalResponse(output.WeeklyGoal))
	default:
		ctx.JSON(http.StatusOK, dto.ToMonthlyGoalResponse(output.MonthlyGoal))
	}
}

// TodayTasks handles GET /daily-tasks/today.
func (c *GoalController) TodayTasks(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.todayTasksUseCase.Execute(ctx.Request.Context(), goal.ListTodayTasksInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TodayTasksResponse{
		Date:  output.Date,
		Tasks: dto.ToDailyTaskResponses(output.Tasks),
	})
}

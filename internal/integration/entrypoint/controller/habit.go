package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// HabitController handles habit endpoints. Habits are addressed by name.
type HabitController struct {
	listUseCase            *habit.ListHabitsUseCase
	createUseCase          *habit.CreateHabitUseCase
	updateSettingsUseCase  *habit.UpdateSettingsUseCase
	deleteUseCase          *habit.DeleteHabitUseCase
	recordProgressUseCase  *habit.RecordProgressUseCase
	completeSessionUseCase *habit.CompleteSessionUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	listUseCase *habit.ListHabitsUseCase,
	createUseCase *habit.CreateHabitUseCase,
	updateSettingsUseCase *habit.UpdateSettingsUseCase,
	deleteUseCase *habit.DeleteHabitUseCase,
	recordProgressUseCase *habit.RecordProgressUseCase,
	completeSessionUseCase *habit.CompleteSessionUseCase,
) *HabitController {
	return &HabitController{
		listUseCase:            listUseCase,
		createUseCase:          createUseCase,
		updateSettingsUseCase:  updateSettingsUseCase,
		deleteUseCase:          deleteUseCase,
		recordProgressUseCase:  recordProgressUseCase,
		completeSessionUseCase: completeSessionUseCase,
	}
}

// List handles GET /habits.
func (c *HabitController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), habit.ListHabitsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToHabitListResponse(output.Today, output.Habits))
}

// Create handles POST /habits.
func (c *HabitController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateHabitRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingHabitFields)) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), habit.CreateHabitInput{
		UserID:    userID,
		Name:      req.Name,
		Unit:      req.Unit,
		DailyGoal: req.DailyGoal,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToHabitResponse(output.Habit))
}

// Update handles PATCH /habits/:name.
func (c *HabitController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateHabitRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingHabitFields)) {
		return
	}

	output, err := c.updateSettingsUseCase.Execute(ctx.Request.Context(), habit.UpdateSettingsInput{
		UserID:    userID,
		HabitName: ctx.Param("name"),
		Unit:      req.Unit,
		DailyGoal: req.DailyGoal,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit))
}

// Delete handles DELETE /habits/:name.
func (c *HabitController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), habit.DeleteHabitInput{
		UserID:    userID,
		HabitName: ctx.Param("name"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// RecordProgress handles POST /habits/:name/progress.
func (c *HabitController) RecordProgress(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.RecordProgressRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeInvalidProgressAmount)) {
		return
	}

	output, err := c.recordProgressUseCase.Execute(ctx.Request.Context(), habit.RecordProgressInput{
		UserID:    userID,
		HabitName: ctx.Param("name"),
		Amount:    req.Amount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit))
}

// CompleteSession handles POST /habits/:name/sessions.
func (c *HabitController) CompleteSession(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CompleteSessionRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeSessionTooShort)) {
		return
	}

	output, err := c.completeSessionUseCase.Execute(ctx.Request.Context(), habit.CompleteSessionInput{
		UserID:         userID,
		HabitName:      ctx.Param("name"),
		ElapsedSeconds: req.ElapsedSeconds,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SessionResponse{
		Habit:           dto.ToHabitResponse(output.Habit),
		RecordedMinutes: output.RecordedMinutes,
	})
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/schedule"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// ScheduleUseCases groups the use cases behind the schedule, template and saved item endpoints.
type ScheduleUseCases struct {
	AddItem               *schedule.AddItemUseCase
	ListItems             *schedule.ListItemsUseCase
	UpdateItem            *schedule.UpdateItemUseCase
	ToggleItem            *schedule.ToggleItemUseCase
	DeleteItem            *schedule.DeleteItemUseCase
	CreateTemplate        *schedule.CreateTemplateUseCase
	CreateTemplateFromDay *schedule.CreateTemplateFromDayUseCase
	ListTemplates         *schedule.ListTemplatesUseCase
	DeleteTemplate        *schedule.DeleteTemplateUseCase
	ApplyTemplate         *schedule.ApplyTemplateUseCase
	SaveItem              *schedule.SaveItemUseCase
	ListSavedItems        *schedule.ListSavedItemsUseCase
	DeleteSavedItem       *schedule.DeleteSavedItemUseCase
	ScheduleSavedItem     *schedule.ScheduleSavedItemUseCase
}

// ScheduleController handles daily schedule, template and saved item endpoints.
type ScheduleController struct {
	useCases ScheduleUseCases
}

// NewScheduleController creates a new schedule controller instance.
func NewScheduleController(useCases ScheduleUseCases) *ScheduleController {
	return &ScheduleController{useCases: useCases}
}

func toItemInput(req dto.ScheduleItemRequest) schedule.ItemInput {
	return schedule.ItemInput{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Title:     req.Title,
		IsHabit:   req.IsHabit,
		HabitName: req.HabitName,
		Category:  req.Category,
		Priority:  req.Priority,
		Notes:     req.Notes,
	}
}

// ListItems handles GET /schedule?date=YYYY-MM-DD. The date defaults to today.
func (c *ScheduleController) ListItems(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.useCases.ListItems.Execute(ctx.Request.Context(), schedule.ListItemsInput{
		UserID: userID,
		Date:   ctx.Query("date"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	items := make([]dto.ScheduleItemResponse, 0, len(output.Entries))
	for _, entry := range output.Entries {
		items = append(items, dto.ToScheduleItemResponse(entry.Item, entry.Habit))
	}
	ctx.JSON(http.StatusOK, dto.ScheduleDayResponse{Date: output.Date, Items: items})
}

// AddItem handles POST /schedule.
func (c *ScheduleController) AddItem(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.AddScheduleItemRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingScheduleTitle)) {
		return
	}

	output, err := c.useCases.AddItem.Execute(ctx.Request.Context(), schedule.AddItemInput{
		UserID: userID,
		Date:   req.Date,
		Item:   toItemInput(req.ScheduleItemRequest),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToScheduleItemResponse(output.Item, nil))
}

// UpdateItem handles PATCH /schedule/:id.
func (c *ScheduleController) UpdateItem(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidScheduleID))
	if !ok {
		return
	}

	var req dto.ScheduleItemRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingScheduleTitle)) {
		return
	}

	output, err := c.useCases.UpdateItem.Execute(ctx.Request.Context(), schedule.UpdateItemInput{
		UserID: userID,
		ItemID: itemID,
		Item:   toItemInput(req),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToScheduleItemResponse(output.Item, nil))
}

// ToggleItem handles POST /schedule/:id/toggle.
func (c *ScheduleController) ToggleItem(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidScheduleID))
	if !ok {
		return
	}

	output, err := c.useCases.ToggleItem.Execute(ctx.Request.Context(), schedule.ItemRefInput{UserID: userID, ItemID: itemID})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToScheduleItemResponse(output.Item, nil))
}

// DeleteItem handles DELETE /schedule/:id.
func (c *ScheduleController) DeleteItem(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidScheduleID))
	if !ok {
		return
	}

	if err := c.useCases.DeleteItem.Execute(ctx.Request.Context(), schedule.ItemRefInput{UserID: userID, ItemID: itemID}); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListTemplates handles GET /templates.
func (c *ScheduleController) ListTemplates(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.useCases.ListTemplates.Execute(ctx.Request.Context(), schedule.ListTemplatesInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTemplateListResponse(output.Templates))
}

// CreateTemplate handles POST /templates.
func (c *ScheduleController) CreateTemplate(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTemplateRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingTemplateName)) {
		return
	}

	entries := make([]schedule.ItemInput, 0, len(req.Entries))
	for _, entry := range req.Entries {
		entries = append(entries, toItemInput(entry))
	}

	output, err := c.useCases.CreateTemplate.Execute(ctx.Request.Context(), schedule.CreateTemplateInput{
		UserID:  userID,
		Name:    req.Name,
		Entries: entries,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTemplateResponse(output.Template))
}

// CreateTemplateFromDay handles POST /templates/from-day.
func (c *ScheduleController) CreateTemplateFromDay(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTemplateFromDayRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingTemplateName)) {
		return
	}

	output, err := c.useCases.CreateTemplateFromDay.Execute(ctx.Request.Context(), schedule.CreateTemplateFromDayInput{
		UserID: userID,
		Name:   req.Name,
		Date:   req.Date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTemplateResponse(output.Template))
}

// DeleteTemplate handles DELETE /templates/:id.
func (c *ScheduleController) DeleteTemplate(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	templateID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidScheduleID))
	if !ok {
		return
	}

	if err := c.useCases.DeleteTemplate.Execute(ctx.Request.Context(), schedule.TemplateRefInput{UserID: userID, TemplateID: templateID}); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ApplyTemplate handles POST /templates/:id/apply. Today's schedule is replaced.
func (c *ScheduleController) ApplyTemplate(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	templateID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidScheduleID))
	if !ok {
		return
	}

	output, err := c.useCases.ApplyTemplate.Execute(ctx.Request.Context(), schedule.TemplateRefInput{UserID: userID, TemplateID: templateID})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ScheduleDayResponse{
		Date:  output.Date,
		Items: dto.ToScheduleItemResponses(output.Items),
	})
}

// ListSavedItems handles GET /saved-items.
func (c *ScheduleController) ListSavedItems(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.useCases.ListSavedItems.Execute(ctx.Request.Context(), schedule.ListSavedItemsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSavedItemListResponse(output.Items))
}

// SaveItem handles POST /saved-items.
func (c *ScheduleController) SaveItem(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.ScheduleItemRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingScheduleTitle)) {
		return
	}

	output, err := c.useCases.SaveItem.Execute(ctx.Request.Context(), schedule.SaveItemInput{
		UserID: userID,
		Item:   toItemInput(req),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToSavedItemResponse(output.SavedItem))
}

// DeleteSavedItem handles DELETE /saved-items/:id.
func (c *ScheduleController) DeleteSavedItem(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	savedItemID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidScheduleID))
	if !ok {
		return
	}

	if err := c.useCases.DeleteSavedItem.Execute(ctx.Request.Context(), schedule.SavedItemRefInput{UserID: userID, SavedItemID: savedItemID}); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ScheduleSavedItem handles POST /saved-items/:id/schedule. The body is optional.
func (c *ScheduleController) ScheduleSavedItem(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	savedItemID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidScheduleID))
	if !ok {
		return
	}

	var req dto.ScheduleSavedItemRequest
	if ctx.Request.ContentLength > 0 && !bindBody(ctx, &req, string(domainerror.ErrCodeInvalidScheduleDate)) {
		return
	}

	output, err := c.useCases.ScheduleSavedItem.Execute(ctx.Request.Context(), schedule.ScheduleSavedItemInput{
		UserID:      userID,
		SavedItemID: savedItemID,
		Date:        req.Date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToScheduleItemResponse(output.Item, nil))
}

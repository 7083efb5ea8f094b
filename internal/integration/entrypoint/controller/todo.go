package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/todo"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// TodoController handles todo endpoints.
type TodoController struct {
	listUseCase   *todo.ListTodosUseCase
	createUseCase *todo.CreateTodoUseCase
	updateUseCase *todo.UpdateTodoUseCase
	toggleUseCase *todo.ToggleTodoUseCase
	deleteUseCase *todo.DeleteTodoUseCase
}

// NewTodoController creates a new todo controller instance.
func NewTodoController(
	listUseCase *todo.ListTodosUseCase,
	createUseCase *todo.CreateTodoUseCase,
	updateUseCase *todo.UpdateTodoUseCase,
	toggleUseCase *todo.ToggleTodoUseCase,
	deleteUseCase *todo.DeleteTodoUseCase,
) *TodoController {
	return &TodoController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		toggleUseCase: toggleUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /todos.
func (c *TodoController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), todo.ListTodosInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTodoListResponse(output.Todos))
}

// Create handles POST /todos.
func (c *TodoController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTodoRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingTodoTitle)) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), todo.CreateTodoInput{
		UserID:   userID,
		Title:    req.Title,
		Priority: req.Priority,
		Category: req.Category,
		DueDate:  req.DueDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTodoResponse(output.Todo))
}

// Update handles PATCH /todos/:id. An empty due_date clears it.
func (c *TodoController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	todoID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidTodoID))
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingTodoTitle)) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), todo.UpdateTodoInput{
		UserID:   userID,
		TodoID:   todoID,
		Title:    req.Title,
		Priority: req.Priority,
		Category: req.Category,
		DueDate:  req.DueDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTodoResponse(output.Todo))
}

// Toggle handles POST /todos/:id/toggle.
func (c *TodoController) Toggle(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	todoID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidTodoID))
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), todo.ToggleTodoInput{UserID: userID, TodoID: todoID})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTodoResponse(output.Todo))
}

// Delete handles DELETE /todos/:id.
func (c *TodoController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	todoID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidTodoID))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), todo.DeleteTodoInput{UserID: userID, TodoID: todoID}); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

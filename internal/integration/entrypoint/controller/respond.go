// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// requireUser reads the authenticated user, answering 401 when absent.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// bindBody decodes the JSON body, answering 400 with code on failure.
func bindBody(ctx *gin.Context, req interface{}, code string) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    code,
			Details: err.Error(),
		})
		return false
	}
	return true
}

// pathID parses the :id path parameter, answering 400 with code when it is not a UUID.
func pathID(ctx *gin.Context, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
			Code:  code,
		})
		return uuid.Nil, false
	}
	return id, true
}

// statusForCode maps the category digits of a PREFIX-XXYYYY code to an HTTP status.
func statusForCode(code string) int {
	_, rest, found := strings.Cut(code, "-")
	if !found || len(rest) < 2 {
		return http.StatusInternalServerError
	}
	switch rest[:2] {
	case "01":
		return http.StatusBadRequest
	case "02":
		return http.StatusNotFound
	case "03":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the response for an error returned by a use case.
func respondError(ctx *gin.Context, err error) {
	var (
		persistenceErr *domainerror.PersistenceError
		goalErr        *domainerror.GoalError
		habitErr       *domainerror.HabitError
		todoErr        *domainerror.TodoError
		scheduleErr    *domainerror.ScheduleError
		analyticsErr   *domainerror.AnalyticsError
	)

	switch {
	case errors.As(err, &persistenceErr):
		message := "Failed to save changes"
		if persistenceErr.Code == domainerror.ErrCodeSnapshotRead {
			message = "Failed to load saved data"
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: message, Code: string(persistenceErr.Code)})
	case errors.As(err, &goalErr):
		writeCoded(ctx, string(goalErr.Code), goalErr.Message)
	case errors.As(err, &habitErr):
		writeCoded(ctx, string(habitErr.Code), habitErr.Message)
	case errors.As(err, &todoErr):
		writeCoded(ctx, string(todoErr.Code), todoErr.Message)
	case errors.As(err, &scheduleErr):
		writeCoded(ctx, string(scheduleErr.Code), scheduleErr.Message)
	case errors.As(err, &analyticsErr):
		writeCoded(ctx, string(analyticsErr.Code), analyticsErr.Message)
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An internal error occurred"})
	}
}

func writeCoded(ctx *gin.Context, code, message string) {
	status := statusForCode(code)
	if status == http.StatusInternalServerError {
		message = "An internal error occurred"
	}
	ctx.JSON(status, dto.ErrorResponse{Error: message, Code: code})
}

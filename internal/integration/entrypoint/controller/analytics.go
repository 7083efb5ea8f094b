package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/analytics"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

const defaultAnalyticsDays = 7

// AnalyticsController serves the derived habit and todo report.
type AnalyticsController struct {
	getAnalyticsUseCase *analytics.GetAnalyticsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(getAnalyticsUseCase *analytics.GetAnalyticsUseCase) *AnalyticsController {
	return &AnalyticsController{getAnalyticsUseCase: getAnalyticsUseCase}
}

// Get handles GET /analytics?days=7|30|90.
func (c *AnalyticsController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	days := defaultAnalyticsDays
	if raw := ctx.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "days must be 7, 30 or 90",
				Code:  string(domainerror.ErrCodeInvalidWindow),
			})
			return
		}
		days = parsed
	}

	output, err := c.getAnalyticsUseCase.Execute(ctx.Request.Context(), analytics.GetAnalyticsInput{
		UserID: userID,
		Days:   days,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AnalyticsResponse{Report: output.Report, Cached: output.Cached})
}

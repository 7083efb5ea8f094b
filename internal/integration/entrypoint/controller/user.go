package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/auth"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// UserController handles the authenticated user's account endpoints.
type UserController struct {
	profileUseCase       *auth.GetProfileUseCase
	changePlanUseCase    *auth.ChangePlanUseCase
	deleteAccountUseCase *auth.DeleteAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	profileUseCase *auth.GetProfileUseCase,
	changePlanUseCase *auth.ChangePlanUseCase,
	deleteAccountUseCase *auth.DeleteAccountUseCase,
) *UserController {
	return &UserController{
		profileUseCase:       profileUseCase,
		changePlanUseCase:    changePlanUseCase,
		deleteAccountUseCase: deleteAccountUseCase,
	}
}

// Me handles GET /users/me.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	user, err := c.profileUseCase.Execute(ctx.Request.Context(), auth.GetProfileInput{UserID: userID})
	if err != nil {
		handleAuthError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ChangePlan handles PATCH /users/me/plan.
func (c *UserController) ChangePlan(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.ChangePlanRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeInvalidTier)) {
		return
	}

	output, err := c.changePlanUseCase.Execute(ctx.Request.Context(), auth.ChangePlanInput{
		UserID: userID,
		Tier:   req.Tier,
	})
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PlanResponse{
		User:     dto.ToUserResponse(output.User),
		Migrated: output.Migrated,
	})
}

// DeleteAccount handles DELETE /users/me.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.DeleteAccountRequest
	if !bindBody(ctx, &req, string(domainerror.ErrCodeMissingFields)) {
		return
	}

	err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), auth.DeleteAccountInput{
		UserID:       userID,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

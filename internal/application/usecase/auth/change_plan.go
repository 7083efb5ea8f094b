package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// ChangePlanInput represents the input for switching subscription tier.
type ChangePlanInput struct {
	UserID uuid.UUID
	Tier   string
}

// ChangePlanOutput represents the user after the switch.
type ChangePlanOutput struct {
	User     *entity.User
	Migrated bool
}

// ChangePlanUseCase switches a user's tier and moves their documents to the matching store.
type ChangePlanUseCase struct {
	userRepo adapter.UserRepository
	migrator adapter.PlanMigrator
}

// NewChangePlanUseCase creates a new ChangePlanUseCase instance.
func NewChangePlanUseCase(userRepo adapter.UserRepository, migrator adapter.PlanMigrator) *ChangePlanUseCase {
	return &ChangePlanUseCase{
		userRepo: userRepo,
		migrator: migrator,
	}
}

// Execute performs the plan change. Documents are copied before the tier flips,
// so a failed copy leaves the user on the old store.
func (uc *ChangePlanUseCase) Execute(ctx context.Context, input ChangePlanInput) (*ChangePlanOutput, error) {
	tier := entity.Tier(input.Tier)
	if !tier.IsValid() {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidTier, "tier must be free or premium", domainerror.ErrInvalidTier)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeUserNotFound, "user not found", err)
	}

	if user.Tier == tier {
		return &ChangePlanOutput{User: user}, nil
	}

	if err := uc.migrator.Migrate(ctx, user.ID, user.Tier, tier); err != nil {
		slog.Error("Plan migration failed", "user_id", user.ID, "from", user.Tier, "to", tier, "error", err)
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePlanMigrationFailed,
			"failed to migrate documents to the new plan",
			domainerror.ErrPlanMigrationFailed,
		)
	}

	previous := user.Tier
	user.Tier = tier
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user tier: %w", err)
	}

	slog.Info("Plan changed", "user_id", user.ID, "from", previous, "to", tier)
	return &ChangePlanOutput{User: user, Migrated: true}, nil
}

// GetProfileInput represents the input for reading the current user.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileUseCase returns the authenticated user.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

// Execute reads the user.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeUserNotFound, "user not found", err)
	}
	return user, nil
}

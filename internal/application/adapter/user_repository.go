// Package adapter declares the ports the use cases depend on. Implementations live in internal/integration.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// UserRepository stores accounts. The tiered document store also reads it to decide
// whether a user's snapshots live in the local or the remote store.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error

	// FindByID returns domainerror.ErrUserNotFound when no account matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update persists plan and notification preference changes.
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

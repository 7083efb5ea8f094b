package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// Notifier delivers goal notifications outside the request/response cycle.
// Implementations must not fail the calling operation.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, notifications []entity.GoalNotification)
}

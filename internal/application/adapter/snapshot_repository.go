package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// SnapshotRepository loads and saves whole per-concern collections.
// A missing document loads as an empty collection.
type SnapshotRepository interface {
	LoadGoals(ctx context.Context, userID uuid.UUID) (*entity.GoalBoard, error)
	SaveGoals(ctx context.Context, userID uuid.UUID, board *entity.GoalBoard) error

	LoadHabits(ctx context.Context, userID uuid.UUID) (*entity.HabitBook, error)
	SaveHabits(ctx context.Context, userID uuid.UUID, book *entity.HabitBook) error

	LoadTodos(ctx context.Context, userID uuid.UUID) (*entity.TodoList, error)
	SaveTodos(ctx context.Context, userID uuid.UUID, list *entity.TodoList) error

	LoadSchedule(ctx context.Context, userID uuid.UUID) (*entity.Schedule, error)
	SaveSchedule(ctx context.Context, userID uuid.UUID, schedule *entity.Schedule) error

	LoadTemplates(ctx context.Context, userID uuid.UUID) (*entity.TemplateSet, error)
	SaveTemplates(ctx context.Context, userID uuid.UUID, templates *entity.TemplateSet) error

	LoadSavedItems(ctx context.Context, userID uuid.UUID) (*entity.SavedItemSet, error)
	SaveSavedItems(ctx context.Context, userID uuid.UUID, items *entity.SavedItemSet) error
}

// PlanMigrator moves a user's documents when their tier changes.
type PlanMigrator interface {
	Migrate(ctx context.Context, userID uuid.UUID, from, to entity.Tier) error
}

package todo

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UpdateTodoInput represents a partial todo update. Nil fields are left unchanged.
type UpdateTodoInput struct {
	UserID   uuid.UUID
	TodoID   uuid.UUID
	Title    *string
	Priority *string
	Category *string
	DueDate  *string // Empty string clears the due date
}

// UpdateTodoOutput represents the updated todo.
type UpdateTodoOutput struct {
	Todo *entity.Todo
}

// UpdateTodoUseCase edits a todo's fields.
type UpdateTodoUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewUpdateTodoUseCase creates a new UpdateTodoUseCase instance.
func NewUpdateTodoUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *UpdateTodoUseCase {
	return &UpdateTodoUseCase{snapshots: snapshots, clock: clock}
}

// Execute performs the update.
func (uc *UpdateTodoUseCase) Execute(ctx context.Context, input UpdateTodoInput) (*UpdateTodoOutput, error) {
	list, err := loadList(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	todo, err := findTodo(list, input.TodoID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.NewTodoError(
				domainerror.ErrCodeMissingTodoTitle,
				"title is required",
				domainerror.ErrMissingTodoTitle,
			)
		}
		todo.Title = title
	}

	if input.Priority != nil {
		priority, err := parsePriority(*input.Priority)
		if err != nil {
			return nil, err
		}
		todo.Priority = priority
	}

	if input.Category != nil {
		todo.Category = strings.TrimSpace(*input.Category)
	}

	if input.DueDate != nil {
		dueDate, err := parseDueDate(input.DueDate, uc.clock.Now().Location())
		if err != nil {
			return nil, err
		}
		todo.DueDate = dueDate
	}

	if err := saveList(ctx, uc.snapshots, input.UserID, list); err != nil {
		return nil, err
	}
	return &UpdateTodoOutput{Todo: todo}, nil
}

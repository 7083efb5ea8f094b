package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UpdateItemInput replaces an item's content; its date and completion are kept.
type UpdateItemInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
	Item   ItemInput
}

// UpdateItemUseCase re-validates and replaces a schedule item's details.
type UpdateItemUseCase struct {
	snapshots adapter.SnapshotRepository
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(snapshots adapter.SnapshotRepository) *UpdateItemUseCase {
	return &UpdateItemUseCase{snapshots: snapshots}
}

// Execute updates the item.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*ItemOutput, error) {
	details, err := input.Item.toDetails()
	if err != nil {
		return nil, err
	}

	schedule, err := loadSchedule(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	item, err := schedule.UpdateItem(input.ItemID, details)
	if err != nil {
		return nil, domainerror.ScheduleValidationError(err)
	}
	if item == nil {
		return nil, itemNotFound()
	}

	if err := saveSchedule(ctx, uc.snapshots, input.UserID, schedule); err != nil {
		return nil, err
	}
	return &ItemOutput{Item: item}, nil
}

package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// ItemRefInput addresses a single schedule item.
type ItemRefInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
}

// ToggleItemUseCase flips a schedule item's completed flag.
type ToggleItemUseCase struct {
	snapshots adapter.SnapshotRepository
}

// NewToggleItemUseCase creates a new ToggleItemUseCase instance.
func NewToggleItemUseCase(snapshots adapter.SnapshotRepository) *ToggleItemUseCase {
	return &ToggleItemUseCase{snapshots: snapshots}
}

// Execute toggles the item.
func (uc *ToggleItemUseCase) Execute(ctx context.Context, input ItemRefInput) (*ItemOutput, error) {
	schedule, err := loadSchedule(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	item, ok := schedule.ToggleItem(input.ItemID)
	if !ok {
		return nil, itemNotFound()
	}

	if err := saveSchedule(ctx, uc.snapshots, input.UserID, schedule); err != nil {
		return nil, err
	}
	return &ItemOutput{Item: item}, nil
}

// DeleteItemUseCase removes a schedule item.
type DeleteItemUseCase struct {
	snapshots adapter.SnapshotRepository
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(snapshots adapter.SnapshotRepository) *DeleteItemUseCase {
	return &DeleteItemUseCase{snapshots: snapshots}
}

// Execute deletes the item.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input ItemRefInput) error {
	schedule, err := loadSchedule(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return err
	}

	if !schedule.RemoveItem(input.ItemID) {
		return itemNotFound()
	}

	return saveSchedule(ctx, uc.snapshots, input.UserID, schedule)
}

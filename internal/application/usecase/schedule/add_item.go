package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// AddItemInput represents the input for adding a schedule item.
type AddItemInput struct {
	UserID uuid.UUID
	Date   string // Optional, defaults to today
	Item   ItemInput
}

// ItemOutput wraps a single schedule item.
type ItemOutput struct {
	Item *entity.ScheduleItem
}

// AddItemUseCase validates and adds a time block.
type AddItemUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewAddItemUseCase creates a new AddItemUseCase instance.
func NewAddItemUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *AddItemUseCase {
	return &AddItemUseCase{snapshots: snapshots, clock: clock}
}

// Execute adds the item.
func (uc *AddItemUseCase) Execute(ctx context.Context, input AddItemInput) (*ItemOutput, error) {
	date, err := resolveDate(input.Date, uc.clock)
	if err != nil {
		return nil, err
	}

	details, err := input.Item.toDetails()
	if err != nil {
		return nil, err
	}

	schedule, err := loadSchedule(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	item, err := schedule.AddItem(details, date, uc.clock.Now())
	if err != nil {
		return nil, domainerror.ScheduleValidationError(err)
	}

	if err := saveSchedule(ctx, uc.snapshots, input.UserID, schedule); err != nil {
		return nil, err
	}
	return &ItemOutput{Item: item}, nil
}

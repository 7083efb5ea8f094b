package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// SaveItemInput represents the input for saving a reusable entry.
type SaveItemInput struct {
	UserID uuid.UUID
	Item   ItemInput
}

// SavedItemOutput wraps a single saved item.
type SavedItemOutput struct {
	SavedItem *entity.SavedItem
}

// SaveItemUseCase stores a reusable schedule entry.
type SaveItemUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewSaveItemUseCase creates a new SaveItemUseCase instance.
func NewSaveItemUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *SaveItemUseCase {
	return &SaveItemUseCase{snapshots: snapshots, clock: clock}
}

// Execute saves the entry.
func (uc *SaveItemUseCase) Execute(ctx context.Context, input SaveItemInput) (*SavedItemOutput, error) {
	details, err := input.Item.toDetails()
	if err != nil {
		return nil, err
	}

	items, err := loadSavedItems(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	saved, err := items.Save(details, uc.clock.Now())
	if err != nil {
		return nil, domainerror.ScheduleValidationError(err)
	}

	if err := saveSavedItems(ctx, uc.snapshots, input.UserID, items); err != nil {
		return nil, err
	}
	return &SavedItemOutput{SavedItem: saved}, nil
}

// ListSavedItemsInput represents the input for listing saved items.
type ListSavedItemsInput struct {
	UserID uuid.UUID
}

// ListSavedItemsOutput represents the saved items.
type ListSavedItemsOutput struct {
	Items []*entity.SavedItem
}

// ListSavedItemsUseCase returns every saved item.
type ListSavedItemsUseCase struct {
	snapshots adapter.SnapshotRepository
}

// NewListSavedItemsUseCase creates a new ListSavedItemsUseCase instance.
func NewListSavedItemsUseCase(snapshots adapter.SnapshotRepository) *ListSavedItemsUseCase {
	return &ListSavedItemsUseCase{snapshots: snapshots}
}

// Execute lists the saved items.
func (uc *ListSavedItemsUseCase) Execute(ctx context.Context, input ListSavedItemsInput) (*ListSavedItemsOutput, error) {
	items, err := loadSavedItems(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListSavedItemsOutput{Items: items.Items}, nil
}

// SavedItemRefInput addresses a single saved item.
type SavedItemRefInput struct {
	UserID      uuid.UUID
	SavedItemID uuid.UUID
}

// DeleteSavedItemUseCase removes a saved item.
type DeleteSavedItemUseCase struct {
	snapshots adapter.SnapshotRepository
}

// NewDeleteSavedItemUseCase creates a new DeleteSavedItemUseCase instance.
func NewDeleteSavedItemUseCase(snapshots adapter.SnapshotRepository) *DeleteSavedItemUseCase {
	return &DeleteSavedItemUseCase{snapshots: snapshots}
}

// Execute deletes the saved item.
func (uc *DeleteSavedItemUseCase) Execute(ctx context.Context, input SavedItemRefInput) error {
	items, err := loadSavedItems(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return err
	}

	if !items.Remove(input.SavedItemID) {
		return savedItemNotFound()
	}

	return saveSavedItems(ctx, uc.snapshots, input.UserID, items)
}

// ScheduleSavedItemInput places a saved entry on a day.
type ScheduleSavedItemInput struct {
	UserID      uuid.UUID
	SavedItemID uuid.UUID
	Date        string // Optional, defaults to today
}

// ScheduleSavedItemUseCase adds a copy of a saved entry to the schedule.
type ScheduleSavedItemUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewScheduleSavedItemUseCase creates a new ScheduleSavedItemUseCase instance.
func NewScheduleSavedItemUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *ScheduleSavedItemUseCase {
	return &ScheduleSavedItemUseCase{snapshots: snapshots, clock: clock}
}

// Execute schedules the saved entry.
func (uc *ScheduleSavedItemUseCase) Execute(ctx context.Context, input ScheduleSavedItemInput) (*ItemOutput, error) {
	date, err := resolveDate(input.Date, uc.clock)
	if err != nil {
		return nil, err
	}

	items, err := loadSavedItems(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	saved := items.Find(input.SavedItemID)
	if saved == nil {
		return nil, savedItemNotFound()
	}

	schedule, err := loadSchedule(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	item, err := schedule.AddItem(saved.ItemDetails, date, uc.clock.Now())
	if err != nil {
		return nil, domainerror.ScheduleValidationError(err)
	}

	if err := saveSchedule(ctx, uc.snapshots, input.UserID, schedule); err != nil {
		return nil, err
	}
	return &ItemOutput{Item: item}, nil
}

func savedItemNotFound() error {
	return domainerror.NewScheduleError(
		domainerror.ErrCodeSavedItemNotFound,
		"saved item not found",
		domainerror.ErrSavedItemNotFound,
	)
}

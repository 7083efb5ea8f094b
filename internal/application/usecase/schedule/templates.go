package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CreateTemplateInput represents the input for creating a template from explicit entries.
type CreateTemplateInput struct {
	UserID  uuid.UUID
	Name    string
	Entries []ItemInput
}

// TemplateOutput wraps a single template.
type TemplateOutput struct {
	Template *entity.Template
}

// CreateTemplateUseCase validates every entry and stores a new template.
type CreateTemplateUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewCreateTemplateUseCase creates a new CreateTemplateUseCase instance.
func NewCreateTemplateUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{snapshots: snapshots, clock: clock}
}

// Execute creates the template.
func (uc *CreateTemplateUseCase) Execute(ctx context.Context, input CreateTemplateInput) (*TemplateOutput, error) {
	entries := make([]entity.TemplateEntry, 0, len(input.Entries))
	for _, in := range input.Entries {
		details, err := in.toDetails()
		if err != nil {
			return nil, err
		}
		entries = append(entries, details)
	}

	return storeTemplate(ctx, uc.snapshots, input.UserID, input.Name, entries, uc.clock)
}

// CreateTemplateFromDayInput names a day whose items become the template.
type CreateTemplateFromDayInput struct {
	UserID uuid.UUID
	Name   string
	Date   string // Optional, defaults to today
}

// CreateTemplateFromDayUseCase snapshots a day's schedule into a reusable template.
type CreateTemplateFromDayUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewCreateTemplateFromDayUseCase creates a new CreateTemplateFromDayUseCase instance.
func NewCreateTemplateFromDayUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *CreateTemplateFromDayUseCase {
	return &CreateTemplateFromDayUseCase{snapshots: snapshots, clock: clock}
}

// Execute creates the template.
func (uc *CreateTemplateFromDayUseCase) Execute(ctx context.Context, input CreateTemplateFromDayInput) (*TemplateOutput, error) {
	date, err := resolveDate(input.Date, uc.clock)
	if err != nil {
		return nil, err
	}

	schedule, err := loadSchedule(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	entries := entity.TemplateFromItems(schedule.ItemsOn(date))
	return storeTemplate(ctx, uc.snapshots, input.UserID, input.Name, entries, uc.clock)
}

func storeTemplate(
	ctx context.Context,
	snapshots adapter.SnapshotRepository,
	userID uuid.UUID,
	name string,
	entries []entity.TemplateEntry,
	clock adapter.Clock,
) (*TemplateOutput, error) {
	template, err := entity.NewTemplate(name, entries, clock.Now())
	if err != nil {
		return nil, domainerror.ScheduleValidationError(err)
	}

	templates, err := loadTemplates(ctx, snapshots, userID)
	if err != nil {
		return nil, err
	}
	templates.Add(template)

	if err := saveTemplates(ctx, snapshots, userID, templates); err != nil {
		return nil, err
	}
	return &TemplateOutput{Template: template}, nil
}

// ListTemplatesInput represents the input for listing templates.
type ListTemplatesInput struct {
	UserID uuid.UUID
}

// ListTemplatesOutput represents the user's templates.
type ListTemplatesOutput struct {
	Templates []*entity.Template
}

// ListTemplatesUseCase returns every template.
type ListTemplatesUseCase struct {
	snapshots adapter.SnapshotRepository
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase instance.
func NewListTemplatesUseCase(snapshots adapter.SnapshotRepository) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{snapshots: snapshots}
}

// Execute lists the templates.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context, input ListTemplatesInput) (*ListTemplatesOutput, error) {
	templates, err := loadTemplates(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListTemplatesOutput{Templates: templates.Templates}, nil
}

// TemplateRefInput addresses a single template.
type TemplateRefInput struct {
	UserID     uuid.UUID
	TemplateID uuid.UUID
}

// DeleteTemplateUseCase removes a template. Items already applied stay on the schedule.
type DeleteTemplateUseCase struct {
	snapshots adapter.SnapshotRepository
}

// NewDeleteTemplateUseCase creates a new DeleteTemplateUseCase instance.
func NewDeleteTemplateUseCase(snapshots adapter.SnapshotRepository) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{snapshots: snapshots}
}

// Execute deletes the template.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, input TemplateRefInput) error {
	templates, err := loadTemplates(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return err
	}

	if !templates.Remove(input.TemplateID) {
		return templateNotFound()
	}

	return saveTemplates(ctx, uc.snapshots, input.UserID, templates)
}

func templateNotFound() error {
	return domainerror.NewScheduleError(
		domainerror.ErrCodeTemplateNotFound,
		"template not found",
		domainerror.ErrTemplateNotFound,
	)
}

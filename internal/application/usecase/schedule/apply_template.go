package schedule

import (
	"context"
	"log/slog"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ApplyTemplateOutput reports today's freshly generated items.
type ApplyTemplateOutput struct {
	Date  string
	Items []*entity.ScheduleItem
}

// ApplyTemplateUseCase overwrites today's schedule with copies of a template.
type ApplyTemplateUseCase struct {
	snapshots adapter.SnapshotRepository
	clock     adapter.Clock
}

// NewApplyTemplateUseCase creates a new ApplyTemplateUseCase instance.
func NewApplyTemplateUseCase(snapshots adapter.SnapshotRepository, clock adapter.Clock) *ApplyTemplateUseCase {
	return &ApplyTemplateUseCase{snapshots: snapshots, clock: clock}
}

// Execute applies the template. Every existing item dated today is discarded.
func (uc *ApplyTemplateUseCase) Execute(ctx context.Context, input TemplateRefInput) (*ApplyTemplateOutput, error) {
	templates, err := loadTemplates(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	template := templates.Find(input.TemplateID)
	if template == nil {
		return nil, templateNotFound()
	}

	schedule, err := loadSchedule(ctx, uc.snapshots, input.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	replaced := len(schedule.ItemsOn(entity.DateKey(now)))
	items := schedule.ApplyTemplate(template, now)

	if err := saveSchedule(ctx, uc.snapshots, input.UserID, schedule); err != nil {
		return nil, err
	}

	slog.Info("Template applied",
		"user_id", input.UserID,
		"template_id", template.ID,
		"replaced_items", replaced,
		"created_items", len(items),
	)

	return &ApplyTemplateOutput{Date: entity.DateKey(now), Items: items}, nil
}

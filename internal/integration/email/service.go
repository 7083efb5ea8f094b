// Package email queues and delivers goal notification emails.
package email

import (
	"context"
	"fmt"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// Service writes email jobs to the queue for the Worker.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{queue: queue}
}

// QueueGoalCompletedEmail queues the "goal reached" email.
func (s *Service) QueueGoalCompletedEmail(ctx context.Context, input adapter.GoalEmailInput) error {
	subject := fmt.Sprintf("Goal reached: %s", input.GoalTitle)
	return s.enqueue(ctx, entity.TemplateGoalCompleted, subject, input)
}

// QueueGoalExpiredEmail queues the "deadline passed" email.
func (s *Service) QueueGoalExpiredEmail(ctx context.Context, input adapter.GoalEmailInput) error {
	subject := fmt.Sprintf("Deadline passed: %s", input.GoalTitle)
	return s.enqueue(ctx, entity.TemplateGoalExpired, subject, input)
}

func (s *Service) enqueue(ctx context.Context, template entity.EmailTemplateType, subject string, input adapter.GoalEmailInput) error {
	job := entity.NewEmailJob(template, input.UserEmail, input.UserName, subject, map[string]interface{}{
		"user_name":        input.UserName,
		"goal_title":       input.GoalTitle,
		"achieved_percent": input.AchievedPercent,
		"goals_url":        input.GoalsURL,
	})

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			fmt.Sprintf("failed to queue %s email", template),
			err,
		)
	}
	return nil
}

var _ adapter.EmailService = (*Service)(nil)

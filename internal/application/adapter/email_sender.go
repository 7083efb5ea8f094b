package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// GoalEmailInput carries the data of one goal notification email.
type GoalEmailInput struct {
	UserEmail       string
	UserName        string
	GoalTitle       string
	AchievedPercent int
	GoalsURL        string
}

// EmailService queues notification emails for the background worker.
type EmailService interface {
	QueueGoalCompletedEmail(ctx context.Context, input GoalEmailInput) error
	QueueGoalExpiredEmail(ctx context.Context, input GoalEmailInput) error
}

package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

type stubUsers struct {
	adapter.UserRepository
	user *entity.User
}

func (s *stubUsers) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	if s.user == nil {
		return nil, errors.New("not found")
	}
	return s.user, nil
}

type recordingEmails struct {
	completed []adapter.GoalEmailInput
	expired   []adapter.GoalEmailInput
}

func (r *recordingEmails) QueueGoalCompletedEmail(_ context.Context, input adapter.GoalEmailInput) error {
	r.completed = append(r.completed, input)
	return nil
}

func (r *recordingEmails) QueueGoalExpiredEmail(_ context.Context, input adapter.GoalEmailInput) error {
	r.expired = append(r.expired, input)
	return nil
}

func TestDispatcher_Notify(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUser("ana@example.com", "Ana", "hash", time.Now().UTC())
	notifications := []entity.GoalNotification{
		{Kind: entity.NotificationGoalCompleted, GoalID: uuid.New(), Title: "Read", AchievedPercent: 100},
		{Kind: entity.NotificationGoalExpired, GoalID: uuid.New(), Title: "Run", AchievedPercent: 40},
	}

	t.Run("queues one email per notification", func(t *testing.T) {
		emails := &recordingEmails{}
		NewDispatcher(&stubUsers{user: user}, emails, "http://localhost:3000/goals").Notify(ctx, user.ID, notifications)

		if len(emails.completed) != 1 || len(emails.expired) != 1 {
			t.Fatalf("expected 1 completed and 1 expired email, got %d and %d", len(emails.completed), len(emails.expired))
		}
		if emails.expired[0].AchievedPercent != 40 || emails.expired[0].GoalsURL != "http://localhost:3000/goals" {
			t.Errorf("expected percent 40 and goals url, got %+v", emails.expired[0])
		}
	})

	t.Run("respects the email opt-out", func(t *testing.T) {
		optedOut := *user
		optedOut.EmailNotifications = false
		emails := &recordingEmails{}
		NewDispatcher(&stubUsers{user: &optedOut}, emails, "").Notify(ctx, user.ID, notifications)

		if len(emails.completed)+len(emails.expired) != 0 {
			t.Error("expected no emails for an opted-out user")
		}
	})

	t.Run("missing user only skips email", func(t *testing.T) {
		emails := &recordingEmails{}
		NewDispatcher(&stubUsers{}, emails, "").Notify(ctx, uuid.New(), notifications)

		if len(emails.completed)+len(emails.expired) != 0 {
			t.Error("expected no emails without a user")
		}
	})

	t.Run("nil email service logs only", func(t *testing.T) {
		NewDispatcher(&stubUsers{user: user}, nil, "").Notify(ctx, user.ID, notifications)
	})
}

// Package notification fans goal notifications out to logs, metrics and email.
package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/metrics"
)

// Dispatcher implements adapter.Notifier. Email delivery is skipped when emails is nil
// or the user turned email notifications off.
type Dispatcher struct {
	users    adapter.UserRepository
	emails   adapter.EmailService
	goalsURL string
}

// NewDispatcher creates a notification dispatcher.
func NewDispatcher(users adapter.UserRepository, emails adapter.EmailService, goalsURL string) *Dispatcher {
	return &Dispatcher{
		users:    users,
		emails:   emails,
		goalsURL: goalsURL,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, userID uuid.UUID, notifications []entity.GoalNotification) {
	if len(notifications) == 0 {
		return
	}

	for _, n := range notifications {
		metrics.TrackGoalNotification(string(n.Kind))
		slog.Info("Goal notification",
			"user_id", userID,
			"kind", n.Kind,
			"goal_id", n.GoalID,
			"achieved_percent", n.AchievedPercent,
		)
	}

	if d.emails == nil {
		return
	}

	user, err := d.users.FindByID(ctx, userID)
	if err != nil {
		slog.Error("Failed to load user for goal notification email", "user_id", userID, "error", err)
		return
	}
	if !user.EmailNotifications {
		return
	}

	for _, n := range notifications {
		input := adapter.GoalEmailInput{
			UserEmail:       user.Email,
			UserName:        user.Name,
			GoalTitle:       n.Title,
			AchievedPercent: n.AchievedPercent,
			GoalsURL:        d.goalsURL,
		}

		var queueErr error
		switch n.Kind {
		case entity.NotificationGoalCompleted:
			queueErr = d.emails.QueueGoalCompletedEmail(ctx, input)
		case entity.NotificationGoalExpired:
			queueErr = d.emails.QueueGoalExpiredEmail(ctx, input)
		}
		if queueErr != nil {
			slog.Error("Failed to queue goal notification email",
				"user_id", userID,
				"goal_id", n.GoalID,
				"error", queueErr,
			)
		}
	}
}

var _ adapter.Notifier = (*Dispatcher)(nil)

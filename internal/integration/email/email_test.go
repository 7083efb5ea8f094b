package email

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/email/templates"
)

type memoryQueue struct {
	mu   sync.Mutex
	jobs map[string]*entity.EmailJob
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{jobs: map[string]*entity.EmailJob{}}
}

func (q *memoryQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	copied := *job
	q.jobs[job.ID.String()] = &copied
	return nil
}

func (q *memoryQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	jobs := []*entity.EmailJob{}
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(time.Now().UTC()) && len(jobs) < limit {
			copied := *job
			jobs = append(jobs, &copied)
		}
	}
	return jobs, nil
}

func (q *memoryQueue) Update(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	copied := *job
	q.jobs[job.ID.String()] = &copied
	return nil
}

func (q *memoryQueue) GetByRecipient(_ context.Context, email string) ([]*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	jobs := []*entity.EmailJob{}
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (q *memoryQueue) DeleteOldSentJobs(context.Context, int) (int64, error) {
	return 0, nil
}

func (q *memoryQueue) only(t *testing.T) *entity.EmailJob {
	t.Helper()
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(q.jobs))
	}
	for _, job := range q.jobs {
		return job
	}
	return nil
}

type fakeSender struct {
	err  error
	sent []adapter.SendEmailInput
}

func (s *fakeSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ResendID: "re_123"}, nil
}

func goalInput() adapter.GoalEmailInput {
	return adapter.GoalEmailInput{
		UserEmail:       "ana@example.com",
		UserName:        "Ana",
		GoalTitle:       "Read 20 books",
		AchievedPercent: 100,
		GoalsURL:        "http://localhost:3000/goals",
	}
}

func newTestWorker(t *testing.T, queue *memoryQueue, sender *fakeSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestService(t *testing.T) {
	ctx := context.Background()

	t.Run("completed email is queued with its template data", func(t *testing.T) {
		queue := newMemoryQueue()
		if err := NewService(queue).QueueGoalCompletedEmail(ctx, goalInput()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		job := queue.only(t)
		if job.TemplateType != entity.TemplateGoalCompleted {
			t.Errorf("expected template %s, got %s", entity.TemplateGoalCompleted, job.TemplateType)
		}
		if job.Status != entity.EmailStatusPending {
			t.Errorf("expected pending, got %s", job.Status)
		}
		if job.TemplateData["goal_title"] != "Read 20 books" {
			t.Errorf("expected goal title in template data, got %v", job.TemplateData)
		}
	})

	t.Run("expired email uses the expired template", func(t *testing.T) {
		queue := newMemoryQueue()
		_ = NewService(queue).QueueGoalExpiredEmail(ctx, goalInput())
		if job := queue.only(t); job.TemplateType != entity.TemplateGoalExpired {
			t.Errorf("expected template %s, got %s", entity.TemplateGoalExpired, job.TemplateType)
		}
	})
}

func TestWorker(t *testing.T) {
	ctx := context.Background()

	t.Run("sends and marks the job sent", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := &fakeSender{}
		_ = NewService(queue).QueueGoalCompletedEmail(ctx, goalInput())

		newTestWorker(t, queue, sender).ProcessNow(ctx)

		job := queue.only(t)
		if job.Status != entity.EmailStatusSent || job.ResendID != "re_123" {
			t.Errorf("expected sent job with resend id, got %s %q", job.Status, job.ResendID)
		}
		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.sent))
		}
		if !strings.Contains(sender.sent[0].Text, "Read 20 books") || !strings.Contains(sender.sent[0].HTML, "Read 20 books") {
			t.Error("expected the goal title in both bodies")
		}
	})

	t.Run("temporary failures are retried later", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := &fakeSender{err: errors.New("timeout")}
		_ = NewService(queue).QueueGoalExpiredEmail(ctx, goalInput())

		newTestWorker(t, queue, sender).ProcessNow(ctx)

		job := queue.only(t)
		if job.Status != entity.EmailStatusPending || job.Attempts != 1 {
			t.Errorf("expected pending after 1 attempt, got %s after %d", job.Status, job.Attempts)
		}
		if !job.ScheduledAt.After(time.Now().UTC()) {
			t.Error("expected the retry to be scheduled in the future")
		}
	})

	t.Run("permanent failures stop retries", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := &fakeSender{err: domainerror.NewEmailError(
			domainerror.ErrCodePermanentEmailFailure,
			"invalid recipient",
			domainerror.ErrPermanentEmailFailure,
		)}
		_ = NewService(queue).QueueGoalCompletedEmail(ctx, goalInput())

		newTestWorker(t, queue, sender).ProcessNow(ctx)

		if job := queue.only(t); job.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed, got %s", job.Status)
		}
	})

	t.Run("unknown templates fail without sending", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := &fakeSender{}
		job := entity.NewEmailJob("weekly_digest", "ana@example.com", "Ana", "Digest", nil)
		job.ScheduledAt = time.Now().UTC().Add(-time.Second)
		_ = queue.Create(ctx, job)

		newTestWorker(t, queue, sender).ProcessNow(ctx)

		if stored := queue.only(t); stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed, got %s", stored.Status)
		}
		if len(sender.sent) != 0 {
			t.Errorf("expected nothing sent, got %d", len(sender.sent))
		}
	})
}

func TestIntField(t *testing.T) {
	data := map[string]interface{}{"a": 42, "b": float64(87), "c": "x"}
	if intField(data, "a") != 42 || intField(data, "b") != 87 || intField(data, "c") != 0 {
		t.Errorf("expected 42/87/0, got %d/%d/%d", intField(data, "a"), intField(data, "b"), intField(data, "c"))
	}
}

package analytics

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// GetAnalyticsInput represents the input for an analytics report.
type GetAnalyticsInput struct {
	UserID uuid.UUID
	Days   int
}

// GetAnalyticsOutput represents the report and whether it came from the cache.
type GetAnalyticsOutput struct {
	Report *Report
	Cached bool
}

// GetAnalyticsUseCase loads habit and todo snapshots and derives a report, memoized per snapshot and window.
type GetAnalyticsUseCase struct {
	snapshots adapter.SnapshotRepository
	cache     adapter.AnalyticsCache
	clock     adapter.Clock
	cacheTTL  time.Duration
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance. cache may be nil.
func NewGetAnalyticsUseCase(
	snapshots adapter.SnapshotRepository,
	cache adapter.AnalyticsCache,
	clock adapter.Clock,
	cacheTTL time.Duration,
) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		snapshots: snapshots,
		cache:     cache,
		clock:     clock,
		cacheTTL:  cacheTTL,
	}
}

// Execute builds or fetches the report.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	window, err := ParseWindow(input.Days)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	// Habits are read through the same rollover the habit store applies, without persisting it
	book, err := uc.snapshots.LoadHabits(ctx, input.UserID)
	if err != nil {
		slog.Error("Failed to load habits for analytics", "user_id", input.UserID, "error", err)
		return nil, domainerror.NewSnapshotReadError(err)
	}
	book.Rollover(now)

	todos, err := uc.snapshots.LoadTodos(ctx, input.UserID)
	if err != nil {
		slog.Error("Failed to load todos for analytics", "user_id", input.UserID, "error", err)
		return nil, domainerror.NewSnapshotReadError(err)
	}

	key, err := cacheKey(input.UserID, book.Habits, todos.Todos, window, now)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(domainerror.ErrCodeAnalyticsInternalError, "failed to build report", err)
	}

	if report, ok := uc.fromCache(ctx, key); ok {
		return &GetAnalyticsOutput{Report: report, Cached: true}, nil
	}

	report := Derive(book.Habits, todos.Todos, window, now)
	uc.toCache(ctx, key, report)

	return &GetAnalyticsOutput{Report: report}, nil
}

func (uc *GetAnalyticsUseCase) fromCache(ctx context.Context, key string) (*Report, bool) {
	if uc.cache == nil {
		return nil, false
	}
	payload, found, err := uc.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Analytics cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var report Report
	if err := json.Unmarshal(payload, &report); err != nil {
		slog.Warn("Discarding undecodable analytics cache entry", "key", key, "error", err)
		return nil, false
	}
	return &report, true
}

func (uc *GetAnalyticsUseCase) toCache(ctx context.Context, key string, report *Report) {
	if uc.cache == nil {
		return
	}
	payload, err := json.Marshal(report)
	if err != nil {
		slog.Warn("Failed to encode analytics report", "error", err)
		return
	}
	if err := uc.cache.Set(ctx, key, payload, uc.cacheTTL); err != nil {
		slog.Warn("Analytics cache write failed", "key", key, "error", err)
	}
}

// cacheKey hashes everything the report depends on: the snapshots and the current day.
func cacheKey(userID uuid.UUID, habits []*entity.Habit, todos []*entity.Todo, window Window, now time.Time) (string, error) {
	snapshot, err := json.Marshal(struct {
		Today  string
		Habits []*entity.Habit
		Todos  []*entity.Todo
	}{
		Today:  entity.DateKey(now),
		Habits: habits,
		Todos:  todos,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode analytics snapshot: %w", err)
	}

	sum := sha256.Sum256(snapshot)
	return fmt.Sprintf("analytics:%s:%s:%d", userID, hex.EncodeToString(sum[:]), window), nil
}

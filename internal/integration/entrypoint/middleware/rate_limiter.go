package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

type windowEntry struct {
	attempts  int
	resetTime time.Time
}

// RateLimiter is a fixed-window, per-client-IP limiter. With a Redis client the
// counters are shared between instances; without one they are kept in memory.
type RateLimiter struct {
	name        string
	maxAttempts int
	window      time.Duration
	redis       *redis.Client

	mu      sync.Mutex
	entries map[string]*windowEntry
}

// NewRateLimiter creates a limiter. name namespaces its Redis keys; client may be nil.
func NewRateLimiter(name string, maxAttempts int, window time.Duration, client *redis.Client) *RateLimiter {
	return &RateLimiter{
		name:        name,
		maxAttempts: maxAttempts,
		window:      window,
		redis:       client,
		entries:     make(map[string]*windowEntry),
	}
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.Request.Context(), c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ctx context.Context, clientIP string) bool {
	if rl.redis != nil {
		allowed, err := rl.allowShared(ctx, clientIP)
		if err == nil {
			return allowed
		}
		slog.Warn("Rate limiter falling back to memory", "limiter", rl.name, "error", err)
	}
	return rl.allowLocal(clientIP)
}

func (rl *RateLimiter) allowShared(ctx context.Context, clientIP string) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", rl.name, clientIP)

	attempts, err := rl.redis.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if attempts == 1 {
		if err := rl.redis.Expire(ctx, key, rl.window).Err(); err != nil {
			return false, err
		}
	}
	return attempts <= int64(rl.maxAttempts), nil
}

func (rl *RateLimiter) allowLocal(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, exists := rl.entries[clientIP]
	if !exists || now.After(entry.resetTime) {
		rl.entries[clientIP] = &windowEntry{attempts: 1, resetTime: now.Add(rl.window)}
		return true
	}
	if entry.attempts < rl.maxAttempts {
		entry.attempts++
		return true
	}
	return false
}

// Cleanup drops expired in-memory windows.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, entry := range rl.entries {
		if now.After(entry.resetTime) {
			delete(rl.entries, key)
		}
	}
}

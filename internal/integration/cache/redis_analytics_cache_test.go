package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisAnalyticsCache(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	ctx := context.Background()
	cache := NewRedisAnalyticsCache(client)

	t.Run("missing key is a miss, not an error", func(t *testing.T) {
		payload, found, err := cache.Get(ctx, "analytics:unknown")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found || payload != nil {
			t.Errorf("expected a miss, got found=%v payload=%s", found, payload)
		}
	})

	t.Run("stored payload is returned", func(t *testing.T) {
		if err := cache.Set(ctx, "analytics:a", []byte(`{"window":7}`), time.Minute); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		payload, found, err := cache.Get(ctx, "analytics:a")
		if err != nil || !found {
			t.Fatalf("expected a hit, got found=%v err=%v", found, err)
		}
		if string(payload) != `{"window":7}` {
			t.Errorf("expected stored payload, got %s", payload)
		}
	})

	t.Run("entries expire with their ttl", func(t *testing.T) {
		_ = cache.Set(ctx, "analytics:b", []byte("x"), time.Minute)
		server.FastForward(2 * time.Minute)
		if _, found, _ := cache.Get(ctx, "analytics:b"); found {
			t.Error("expected the entry to expire")
		}
	})

	t.Run("unreachable redis surfaces an error", func(t *testing.T) {
		server.Close()
		if _, _, err := cache.Get(ctx, "analytics:a"); err == nil {
			t.Error("expected an error once redis is down")
		}
	})
}

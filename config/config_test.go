package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ANALYTICS_CACHE_TTL", "not-a-duration")
	t.Setenv("EMAIL_WORKER_ENABLED", "false")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Redis.AnalyticsTTL != 10*time.Minute {
		t.Errorf("expected default TTL on parse failure, got %s", cfg.Redis.AnalyticsTTL)
	}
	if cfg.Email.WorkerEnabled {
		t.Error("expected worker disabled")
	}
	if cfg.RateLimit.AuthAttempts != 5 {
		t.Errorf("expected 5 auth attempts, got %d", cfg.RateLimit.AuthAttempts)
	}
}

func TestRedisConfig_Enabled(t *testing.T) {
	if (RedisConfig{}).Enabled() {
		t.Error("expected empty URL to disable redis")
	}
	if !(RedisConfig{URL: "redis://localhost:6379/0"}).Enabled() {
		t.Error("expected URL to enable redis")
	}
}

func TestAppConfig_Location(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
	}{
		{name: "utc", timezone: "UTC", want: "UTC"},
		{name: "unknown falls back to utc", timezone: "Mars/Olympus", want: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppConfig{Timezone: tt.timezone}.Location()
			if got.String() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

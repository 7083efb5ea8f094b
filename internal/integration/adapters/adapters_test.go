package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type memoryTokens struct {
	valid map[string]uuid.UUID
}

func (m *memoryTokens) SaveRefreshToken(_ context.Context, token string, userID uuid.UUID, _ time.Time) error {
	m.valid[token] = userID
	return nil
}

func (m *memoryTokens) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, ok := m.valid[token]
	return ok, nil
}

func (m *memoryTokens) InvalidateRefreshToken(_ context.Context, token string) error {
	delete(m.valid, token)
	return nil
}

func (m *memoryTokens) InvalidateAllUserRefreshTokens(_ context.Context, userID uuid.UUID) error {
	for token, owner := range m.valid {
		if owner == userID {
			delete(m.valid, token)
		}
	}
	return nil
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	repo := &memoryTokens{valid: map[string]uuid.UUID{}}
	durations := TokenDurations{Access: 15 * time.Minute, Refresh: 24 * time.Hour}
	service := NewTokenService("test-secret", durations, repo)
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(ctx, userID, "ana@example.com", false)
	if err != nil {
		t.Fatalf("failed to generate tokens: %v", err)
	}

	t.Run("access token carries the user", func(t *testing.T) {
		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if claims.UserID != userID || claims.Email != "ana@example.com" {
			t.Errorf("expected %s/ana@example.com, got %s/%s", userID, claims.UserID, claims.Email)
		}
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected a refresh token to be rejected as access token")
		}
		if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected an access token to be rejected as refresh token")
		}
	})

	t.Run("another secret cannot verify", func(t *testing.T) {
		other := NewTokenService("other-secret", durations, repo)
		if _, err := other.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected signature check to fail")
		}
	})

	t.Run("remember me stretches the access lifetime", func(t *testing.T) {
		long, _ := service.GenerateTokenPair(ctx, userID, "ana@example.com", true)
		claims, err := service.ValidateAccessToken(ctx, long.AccessToken)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if time.Until(claims.ExpiresAt) < 30*time.Minute {
			t.Errorf("expected an extended expiry, got %v", claims.ExpiresAt)
		}
	})

	t.Run("revoked refresh tokens are rejected", func(t *testing.T) {
		if _, err := service.ValidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("expected valid refresh token, got %v", err)
		}
		_ = service.InvalidateAllUserTokens(ctx, userID)
		if _, err := service.ValidateRefreshToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected revoked refresh token to be rejected")
		}
	})

	t.Run("expired tokens are rejected", func(t *testing.T) {
		expired := NewTokenService("test-secret", TokenDurations{Access: -time.Minute, Refresh: time.Hour}, repo)
		stale, _ := expired.GenerateTokenPair(ctx, userID, "ana@example.com", false)
		if _, err := service.ValidateAccessToken(ctx, stale.AccessToken); err == nil {
			t.Error("expected an expired token to be rejected")
		}
	})
}

func TestPasswordService(t *testing.T) {
	service := NewPasswordService(bcrypt.MinCost)

	t.Run("hash and verify", func(t *testing.T) {
		hash, err := service.HashPassword("Secret123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := service.VerifyPassword(hash, "Secret123"); err != nil {
			t.Errorf("expected match, got %v", err)
		}
		if err := service.VerifyPassword(hash, "Secret124"); err == nil {
			t.Error("expected mismatch")
		}
	})

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "letters and digits", password: "Secret123", valid: true},
		{name: "too short", password: "Ab1", valid: false},
		{name: "no digit", password: "SecretWord", valid: false},
		{name: "no letter", password: "12345678", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if (err == nil) != tt.valid {
				t.Errorf("expected valid=%v, got %v", tt.valid, err)
			}
		})
	}
}

func TestSystemClock(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	if got := NewSystemClock(tokyo).Now().Location(); got != tokyo {
		t.Errorf("expected JST, got %v", got)
	}
	if got := NewSystemClock(nil).Now().Location(); got != time.UTC {
		t.Errorf("expected UTC, got %v", got)
	}
}

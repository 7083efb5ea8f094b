// Package auth contains account, session and subscription plan use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SessionOutput is returned by every use case that opens a session.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func openSession(ctx context.Context, tokens adapter.TokenService, user *entity.User, rememberMe bool) (*SessionOutput, error) {
	pair, err := tokens.GenerateTokenPair(ctx, user.ID, user.Email, rememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return &SessionOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

var testTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type fakeUsers struct {
	byID map[uuid.UUID]*entity.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]*entity.User{}}
}

func (f *fakeUsers) Create(_ context.Context, user *entity.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUsers) Update(_ context.Context, user *entity.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	return err == nil, nil
}

// plainPasswords stores "hashed:" + password and requires at least eight characters.
type plainPasswords struct{}

func (plainPasswords) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainPasswords) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (plainPasswords) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

type fakeTokens struct {
	issued  int
	refresh map[string]uuid.UUID
	revoked []string
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{refresh: map[string]uuid.UUID{}}
}

func (f *fakeTokens) GenerateTokenPair(_ context.Context, userID uuid.UUID, _ string, _ bool) (*adapter.TokenPair, error) {
	f.issued++
	refresh := "refresh-" + uuid.NewString()
	f.refresh[refresh] = userID
	return &adapter.TokenPair{AccessToken: "access-" + uuid.NewString(), RefreshToken: refresh}, nil
}

func (f *fakeTokens) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func (f *fakeTokens) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	userID, ok := f.refresh[token]
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{UserID: userID}, nil
}

func (f *fakeTokens) InvalidateRefreshToken(_ context.Context, token string) error {
	if _, ok := f.refresh[token]; !ok {
		return domainerror.ErrInvalidToken
	}
	delete(f.refresh, token)
	f.revoked = append(f.revoked, token)
	return nil
}

func (f *fakeTokens) InvalidateAllUserTokens(_ context.Context, userID uuid.UUID) error {
	for token, owner := range f.refresh {
		if owner == userID {
			delete(f.refresh, token)
		}
	}
	return nil
}

type fakeDocuments struct {
	adapter.DocumentStore
	deleted []uuid.UUID
}

func (f *fakeDocuments) DeleteAll(_ context.Context, userID uuid.UUID) error {
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeMigrator struct {
	err   error
	calls int
}

func (f *fakeMigrator) Migrate(context.Context, uuid.UUID, entity.Tier, entity.Tier) error {
	f.calls++
	return f.err
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	return authErr.Code
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()
	users := newFakeUsers()
	tokens := newFakeTokens()
	uc := NewRegisterUserUseCase(users, plainPasswords{}, tokens)

	t.Run("registers a free user and opens a session", func(t *testing.T) {
		output, err := uc.Execute(ctx, RegisterUserInput{
			Email:         "  Ana@Example.com ",
			Name:          "Ana",
			Password:      "Secret123",
			TermsAccepted: true,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.User.Email != "ana@example.com" {
			t.Errorf("expected normalized email, got %s", output.User.Email)
		}
		if output.User.Tier != entity.TierFree {
			t.Errorf("expected free tier, got %s", output.User.Tier)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
	})

	tests := []struct {
		name     string
		input    RegisterUserInput
		expected domainerror.AuthErrorCode
	}{
		{
			name:     "terms not accepted",
			input:    RegisterUserInput{Email: "b@example.com", Password: "Secret123"},
			expected: domainerror.ErrCodeTermsNotAccepted,
		},
		{
			name:     "invalid email",
			input:    RegisterUserInput{Email: "not-an-email", Password: "Secret123", TermsAccepted: true},
			expected: domainerror.ErrCodeInvalidEmail,
		},
		{
			name:     "weak password",
			input:    RegisterUserInput{Email: "b@example.com", Password: "short", TermsAccepted: true},
			expected: domainerror.ErrCodeWeakPassword,
		},
		{
			name:     "email taken",
			input:    RegisterUserInput{Email: "ana@example.com", Password: "Secret123", TermsAccepted: true},
			expected: domainerror.ErrCodeEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			if code := authCode(t, err); code != tt.expected {
				t.Errorf("expected code %s, got %s", tt.expected, code)
			}
		})
	}
}

func TestLoginAndRefresh(t *testing.T) {
	ctx := context.Background()
	users := newFakeUsers()
	tokens := newFakeTokens()
	user := entity.NewUser("ana@example.com", "Ana", "hashed:Secret123", testTime)
	_ = users.Create(ctx, user)

	login := NewLoginUserUseCase(users, plainPasswords{}, tokens)
	refresh := NewRefreshTokenUseCase(users, tokens)

	t.Run("login is case insensitive on email", func(t *testing.T) {
		output, err := login.Execute(ctx, LoginUserInput{Email: "ANA@example.com", Password: "Secret123"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.User.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, output.User.ID)
		}
	})

	t.Run("wrong password and unknown email fail the same way", func(t *testing.T) {
		_, wrongPassword := login.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "nope"})
		_, unknownEmail := login.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "Secret123"})
		if authCode(t, wrongPassword) != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected %s for wrong password, got %v", domainerror.ErrCodeInvalidCredentials, wrongPassword)
		}
		if authCode(t, unknownEmail) != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected %s for unknown email, got %v", domainerror.ErrCodeInvalidCredentials, unknownEmail)
		}
		if wrongPassword.Error() != unknownEmail.Error() {
			t.Errorf("expected identical messages, got %q and %q", wrongPassword, unknownEmail)
		}
	})

	t.Run("refresh rotates the token", func(t *testing.T) {
		session, _ := login.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "Secret123"})

		rotated, err := refresh.Execute(ctx, RefreshTokenInput{RefreshToken: session.RefreshToken})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rotated.RefreshToken == session.RefreshToken {
			t.Error("expected a new refresh token")
		}

		_, err = refresh.Execute(ctx, RefreshTokenInput{RefreshToken: session.RefreshToken})
		if code := authCode(t, err); code != domainerror.ErrCodeInvalidToken {
			t.Errorf("expected code %s on reuse, got %s", domainerror.ErrCodeInvalidToken, code)
		}
	})

	t.Run("logout ignores unknown tokens", func(t *testing.T) {
		if err := NewLogoutUserUseCase(tokens).Execute(ctx, LogoutUserInput{RefreshToken: "unknown"}); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

func TestChangePlanUseCase(t *testing.T) {
	ctx := context.Background()
	users := newFakeUsers()
	user := entity.NewUser("ana@example.com", "Ana", "hashed:Secret123", testTime)
	_ = users.Create(ctx, user)

	t.Run("unknown tier", func(t *testing.T) {
		_, err := NewChangePlanUseCase(users, &fakeMigrator{}).Execute(ctx, ChangePlanInput{UserID: user.ID, Tier: "gold"})
		if code := authCode(t, err); code != domainerror.ErrCodeInvalidTier {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTier, code)
		}
	})

	t.Run("same tier skips migration", func(t *testing.T) {
		migrator := &fakeMigrator{}
		output, err := NewChangePlanUseCase(users, migrator).Execute(ctx, ChangePlanInput{UserID: user.ID, Tier: "free"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Migrated || migrator.calls != 0 {
			t.Errorf("expected no migration, got migrated=%v calls=%d", output.Migrated, migrator.calls)
		}
	})

	t.Run("failed migration keeps the old tier", func(t *testing.T) {
		migrator := &fakeMigrator{err: errors.New("remote down")}
		_, err := NewChangePlanUseCase(users, migrator).Execute(ctx, ChangePlanInput{UserID: user.ID, Tier: "premium"})
		if code := authCode(t, err); code != domainerror.ErrCodePlanMigrationFailed {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePlanMigrationFailed, code)
		}
		if user.Tier != entity.TierFree {
			t.Errorf("expected tier to stay free, got %s", user.Tier)
		}
	})

	t.Run("upgrade migrates then flips the tier", func(t *testing.T) {
		migrator := &fakeMigrator{}
		output, err := NewChangePlanUseCase(users, migrator).Execute(ctx, ChangePlanInput{UserID: user.ID, Tier: "premium"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !output.Migrated || output.User.Tier != entity.TierPremium {
			t.Errorf("expected migrated premium user, got migrated=%v tier=%s", output.Migrated, output.User.Tier)
		}
	})
}

func TestDeleteAccountUseCase(t *testing.T) {
	ctx := context.Background()
	users := newFakeUsers()
	tokens := newFakeTokens()
	documents := &fakeDocuments{}
	user := entity.NewUser("ana@example.com", "Ana", "hashed:Secret123", testTime)
	_ = users.Create(ctx, user)
	_, _ = tokens.GenerateTokenPair(ctx, user.ID, user.Email, false)
	uc := NewDeleteAccountUseCase(users, plainPasswords{}, tokens, documents)

	t.Run("confirmation must be exact", func(t *testing.T) {
		err := uc.Execute(ctx, DeleteAccountInput{UserID: user.ID, Password: "Secret123", Confirmation: "delete"})
		if code := authCode(t, err); code != domainerror.ErrCodeInvalidConfirmation {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidConfirmation, code)
		}
	})

	t.Run("password is required", func(t *testing.T) {
		err := uc.Execute(ctx, DeleteAccountInput{UserID: user.ID, Password: "wrong"})
		if code := authCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, code)
		}
		if len(documents.deleted) != 0 {
			t.Error("expected documents untouched")
		}
	})

	t.Run("deletes documents, sessions and the user", func(t *testing.T) {
		err := uc.Execute(ctx, DeleteAccountInput{UserID: user.ID, Password: "Secret123", Confirmation: "DELETE"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(documents.deleted) != 1 || documents.deleted[0] != user.ID {
			t.Errorf("expected documents deleted for %s, got %v", user.ID, documents.deleted)
		}
		if len(tokens.refresh) != 0 {
			t.Errorf("expected no live refresh tokens, got %d", len(tokens.refresh))
		}
		if _, err := users.FindByID(ctx, user.ID); err == nil {
			t.Error("expected the user to be gone")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		err := uc.Execute(ctx, DeleteAccountInput{UserID: uuid.New(), Password: "Secret123"})
		if code := authCode(t, err); code != domainerror.ErrCodeUserNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUserNotFound, code)
		}
	})
}

func TestNormalizeEmail(t *testing.T) {
	if got := normalizeEmail("  Mixed@Case.COM "); got != "mixed@case.com" {
		t.Errorf("expected mixed@case.com, got %s", got)
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tier is the subscription tier that decides where a user's documents are stored.
type Tier string

const (
	TierFree    Tier = "free"    // documents in the local store
	TierPremium Tier = "premium" // documents in the remote store
)

// IsValid reports whether t is a known tier.
func (t Tier) IsValid() bool {
	return t == TierFree || t == TierPremium
}

// User represents an account in the Habit Tracker system.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	Tier               Tier
	EmailNotifications bool
	TermsAcceptedAt    time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a free-tier user with notifications enabled.
func NewUser(email, name, passwordHash string, termsAcceptedAt time.Time) *User {
	now := time.Now().UTC()
	return &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		Tier:               TierFree,
		EmailNotifications: true,
		TermsAcceptedAt:    termsAcceptedAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

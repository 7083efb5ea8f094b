package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/metrics"
)

// TieredDocumentStore routes each user's documents to the store of their subscription tier.
type TieredDocumentStore struct {
	local  adapter.DocumentStore
	remote adapter.DocumentStore
	users  adapter.UserRepository
}

// NewTieredDocumentStore creates the router. A nil remote store sends every tier to local.
func NewTieredDocumentStore(local, remote adapter.DocumentStore, users adapter.UserRepository) *TieredDocumentStore {
	return &TieredDocumentStore{
		local:  local,
		remote: remote,
		users:  users,
	}
}

// StoreFor returns the document store that holds documents for tier.
func (s *TieredDocumentStore) StoreFor(tier entity.Tier) adapter.DocumentStore {
	if tier == entity.TierPremium && s.remote != nil {
		return s.remote
	}
	return s.local
}

func (s *TieredDocumentStore) storeForUser(ctx context.Context, userID uuid.UUID) (adapter.DocumentStore, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage tier: %w", err)
	}
	return s.StoreFor(user.Tier), nil
}

// Get reads from the user's current store.
func (s *TieredDocumentStore) Get(ctx context.Context, userID uuid.UUID, key adapter.DocumentKey) ([]byte, error) {
	store, err := s.storeForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return store.Get(ctx, userID, key)
}

// Put writes to the user's current store.
func (s *TieredDocumentStore) Put(ctx context.Context, userID uuid.UUID, key adapter.DocumentKey, payload []byte) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to resolve storage tier: %w", err)
	}
	err = s.StoreFor(user.Tier).Put(ctx, userID, key, payload)
	metrics.TrackDocumentWrite(string(user.Tier), err)
	return err
}

// DeleteAll removes the user's documents from both stores.
func (s *TieredDocumentStore) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.local.DeleteAll(ctx, userID); err != nil {
		return err
	}
	if s.remote != nil {
		return s.remote.DeleteAll(ctx, userID)
	}
	return nil
}

// Migrate copies every document from the old tier's store to the new one.
// The source copy is left in place; the tier flip decides which one is read.
func (s *TieredDocumentStore) Migrate(ctx context.Context, userID uuid.UUID, from, to entity.Tier) error {
	source := s.StoreFor(from)
	target := s.StoreFor(to)
	if source == target {
		return nil
	}

	for _, key := range adapter.AllDocumentKeys {
		payload, err := source.Get(ctx, userID, key)
		if err != nil {
			return err
		}
		if payload == nil {
			continue
		}
		if err := target.Put(ctx, userID, key, payload); err != nil {
			return err
		}
	}
	return nil
}

package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// documentRepository keeps snapshot documents in a single gorm table.
// The same implementation backs the local sqlite store and the remote postgres store.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a document store over db.
func NewDocumentRepository(db *gorm.DB) adapter.DocumentStore {
	return &documentRepository{db: db}
}

func (r *documentRepository) Get(ctx context.Context, userID uuid.UUID, key adapter.DocumentKey) ([]byte, error) {
	var row model.DocumentModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND doc_key = ?", userID, string(key)).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s document: %w", key, err)
	}
	return []byte(row.Payload), nil
}

// Put replaces the whole document. Concurrent writers resolve as last write wins.
func (r *documentRepository) Put(ctx context.Context, userID uuid.UUID, key adapter.DocumentKey, payload []byte) error {
	row := model.DocumentModel{
		UserID:    userID,
		Key:       string(key),
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "doc_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write %s document: %w", key, err)
	}
	return nil
}

func (r *documentRepository) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DocumentModel{}, "user_id = ?", userID).Error
}

package adapter

import (
	"context"

	"github.com/google/uuid"
)

// DocumentKey names one per-concern snapshot document.
type DocumentKey string

const (
	DocumentGoals         DocumentKey = "goals"
	DocumentHabits        DocumentKey = "habits"
	DocumentTodos         DocumentKey = "todos"
	DocumentScheduleItems DocumentKey = "schedule_items"
	DocumentTemplates     DocumentKey = "templates"
	DocumentSavedItems    DocumentKey = "saved_items"
)

// AllDocumentKeys lists every snapshot document a user can own.
var AllDocumentKeys = []DocumentKey{
	DocumentGoals,
	DocumentHabits,
	DocumentTodos,
	DocumentScheduleItems,
	DocumentTemplates,
	DocumentSavedItems,
}

// DocumentStore is the opaque persistence port: whole JSON documents keyed by user and key.
// Get returns nil, nil when the document does not exist.
type DocumentStore interface {
	Get(ctx context.Context, userID uuid.UUID, key DocumentKey) ([]byte, error)
	Put(ctx context.Context, userID uuid.UUID, key DocumentKey, payload []byte) error
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}

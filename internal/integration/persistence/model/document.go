package model

import (
	"time"

	"github.com/google/uuid"
)

// DocumentModel stores one whole snapshot document per (user, key).
type DocumentModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"column:doc_key;type:varchar(50);primaryKey"`
	Payload   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the DocumentModel.
func (DocumentModel) TableName() string {
	return "documents"
}

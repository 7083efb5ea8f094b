// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// percent rounds a percentage to one decimal place for display.
func percent(value float64) float64 {
	return decimal.NewFromFloat(value).Round(1).InexactFloat64()
}

func dateString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return entity.DateKey(t)
}

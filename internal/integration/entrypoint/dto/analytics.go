package dto

import "github.com/habit-tracker/backend/internal/application/usecase/analytics"

// AnalyticsResponse is the derived report plus whether it was served from the cache.
type AnalyticsResponse struct {
	*analytics.Report
	Cached bool `json:"cached"`
}

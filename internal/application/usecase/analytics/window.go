// Package analytics derives read-only habit and task time series.
package analytics

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// Window is the number of trailing days, today included, covered by a report.
type Window int

const (
	WindowWeek    Window = 7
	WindowMonth   Window = 30
	WindowQuarter Window = 90
)

// ParseWindow accepts only the supported window lengths.
func ParseWindow(days int) (Window, error) {
	switch Window(days) {
	case WindowWeek, WindowMonth, WindowQuarter:
		return Window(days), nil
	default:
		return 0, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidWindow,
			"days must be 7, 30, or 90",
			domainerror.ErrInvalidWindow,
		)
	}
}

// DaySeries returns the window's calendar days from oldest to newest, ending with now's day.
func DaySeries(now time.Time, window Window) []string {
	days := make([]string, 0, int(window))
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(int(window) - 1))
	for i := 0; i < int(window); i++ {
		days = append(days, entity.DateKey(start.AddDate(0, 0, i)))
	}
	return days
}

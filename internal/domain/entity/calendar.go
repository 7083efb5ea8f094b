package entity

import "time"

// DateLayout is the calendar-day key used for habit history, task dates and schedule dates.
const DateLayout = "2006-01-02"

// DateKey returns the calendar day of t in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// PreviousDateKey returns the calendar day before t.
func PreviousDateKey(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(DateLayout)
}

// ParseDateKey parses a YYYY-MM-DD string in the given location.
func ParseDateKey(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, value, loc)
}

package entity

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}
	instant := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)

	if got := DateKey(instant); got != "2025-03-10" {
		t.Errorf("expected 2025-03-10, got %s", got)
	}
	if got := DateKey(instant.In(tokyo)); got != "2025-03-11" {
		t.Errorf("expected 2025-03-11 in Tokyo, got %s", got)
	}
}

func TestPreviousDateKey(t *testing.T) {
	if got := PreviousDateKey(time.Date(2025, 3, 1, 0, 30, 0, 0, time.UTC)); got != "2025-02-28" {
		t.Errorf("expected 2025-02-28, got %s", got)
	}
}

func TestParseDateKey(t *testing.T) {
	parsed, err := ParseDateKey("2025-03-10", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.Location() != time.UTC {
		t.Errorf("expected UTC for nil location, got %v", parsed.Location())
	}
	if _, err := ParseDateKey("2025-3-10", time.UTC); err == nil {
		t.Error("expected error for unpadded date")
	}
}

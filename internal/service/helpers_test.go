package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart_MondayIsItsOwnStart(t *testing.T) {
	monday := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), weekStart(monday))
}

func TestWeekStart_SundayBelongsToPreviousMonday(t *testing.T) {
	sunday := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), weekStart(sunday))
}

func TestWeekStart_MidWeek(t *testing.T) {
	thursday := time.Date(2026, 3, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), weekStart(thursday))
}

func TestDateOnly_StripsClockAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	ts := time.Date(2026, 3, 5, 2, 30, 0, 0, loc) // 2026-03-04 21:30 UTC
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), dateOnly(ts))
}

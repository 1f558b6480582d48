package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/lifeos/internal/service"
)

func TestFormatWeeklyProgress(t *testing.T) {
	p := &service.WeeklyProgress{
		WeekStart:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TotalTasks:     8,
		CompletedTasks: 4,
		CompletionRate: 0.5,
	}

	out := FormatWeeklyProgress("Mira", p)
	assert.Contains(t, out, "Week of Mar 2, 2026")
	assert.Contains(t, out, "4 completed")
	assert.Contains(t, out, "8 assigned")
	assert.Contains(t, out, " 50%")
}

func TestFormatWeeklyProgress_EmptyWeek(t *testing.T) {
	p := &service.WeeklyProgress{WeekStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)}
	out := FormatWeeklyProgress("Mira", p)
	assert.Contains(t, out, "No tasks assigned this week.")
}

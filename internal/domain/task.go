package domain

import (
	"fmt"
	"time"
)

// RawTask is a single generated task as returned by a task generator.
// Its fields are untrusted until validated against the pillar and
// difficulty enums.
type RawTask struct {
	Pillar          Pillar     `json:"pillar"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DurationMinutes int        `json:"duration_minutes"`
	DifficultyLevel Difficulty `json:"difficulty_level"`
}

// Validate checks the structural constraints on a generated task.
func (t *RawTask) Validate() error {
	if !ValidPillar(t.Pillar) {
		return fmt.Errorf("unknown pillar %q", t.Pillar)
	}
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.DurationMinutes <= 0 {
		return fmt.Errorf("duration_minutes must be positive, got %d", t.DurationMinutes)
	}
	if !ValidDifficulty(t.DifficultyLevel) {
		return fmt.Errorf("unknown difficulty level %q", t.DifficultyLevel)
	}
	return nil
}

// DailyTask is one assigned daily task under a development pillar.
type DailyTask struct {
	ID                  string
	ChildID             string
	Pillar              Pillar
	Title               string
	Description         string
	DurationMinutes     int
	DifficultyLevel     Difficulty
	Completed           bool
	CompletionTimestamp *time.Time
	DateAssigned        time.Time
	CreatedAt           time.Time
}

// TaskOutcome is the slice of task history the signal computation consumes:
// which pillar a task belonged to, whether it was completed, and when it
// was assigned.
type TaskOutcome struct {
	Pillar       Pillar
	Completed    bool
	DateAssigned time.Time
}

package domain

import (
	"fmt"
	"time"
)

// DailyCheckin stores a parent-reported joy score and notes for one day.
// Check-ins feed the low-joy streak personalization signal.
type DailyCheckin struct {
	ID          string
	ChildID     string
	JoyScore    int
	ParentNotes string
	CheckinDate time.Time
	CreatedAt   time.Time
}

// Validate checks the joy score range before persisting.
func (c *DailyCheckin) Validate() error {
	if c.JoyScore < 1 || c.JoyScore > 5 {
		return fmt.Errorf("joy score must be between 1 and 5, got %d", c.JoyScore)
	}
	return nil
}

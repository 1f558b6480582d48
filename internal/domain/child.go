package domain

import (
	"fmt"
	"strings"
	"time"
)

type ChildProfile struct {
	ID             string
	Name           string
	DateOfBirth    time.Time
	Interests      []string
	ParentPriority string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks the fields required before a profile can be persisted.
func (p *ChildProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("date of birth is required")
	}
	if strings.TrimSpace(p.ParentPriority) == "" {
		return fmt.Errorf("parent priority is required")
	}
	return nil
}

// AgeYears returns the child's age in whole years as of the given date,
// floored at zero for future birth dates.
func (p *ChildProfile) AgeYears(asOf time.Time) int {
	days := int(asOf.Sub(p.DateOfBirth).Hours() / 24)
	years := days / 365
	if years < 0 {
		return 0
	}
	return years
}

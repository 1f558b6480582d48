package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/lifeos/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type ChildProfileRepo interface {
	Create(ctx context.Context, p *domain.ChildProfile) error
	GetByID(ctx context.Context, id string) (*domain.ChildProfile, error)
	List(ctx context.Context) ([]*domain.ChildProfile, error)
	Update(ctx context.Context, p *domain.ChildProfile) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.DailyTask) error
	GetByID(ctx context.Context, id string) (*domain.DailyTask, error)
	ListByChildAndDate(ctx context.Context, childID string, date time.Time) ([]*domain.DailyTask, error)

	// ListOutcomesSince returns the pillar/completion/date triples for all
	// tasks assigned to the child on or after the given date. This is the
	// raw input to signal computation.
	ListOutcomesSince(ctx context.Context, childID string, since time.Time) ([]domain.TaskOutcome, error)

	// CountSince returns total and completed task counts for the child on
	// or after the given assignment date.
	CountSince(ctx context.Context, childID string, since time.Time) (total, completed int, err error)

	SetCompleted(ctx context.Context, id string, completed bool, completedAt *time.Time) error
}

type CheckinRepo interface {
	Create(ctx context.Context, c *domain.DailyCheckin) error

	// ListRecent returns up to limit check-ins for the child, most recent
	// check-in date first.
	ListRecent(ctx context.Context, childID string, limit int) ([]*domain.DailyCheckin, error)
}

type MilestoneRepo interface {
	ListByChild(ctx context.Context, childID string) ([]*domain.Milestone, error)

	// Upsert records the achieved flag for one (child, phase, title) entry.
	Upsert(ctx context.Context, m *domain.Milestone) error
}

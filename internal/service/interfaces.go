package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lifeos/internal/domain"
)

type ProfileService interface {
	Create(ctx context.Context, p *domain.ChildProfile) error
	GetByID(ctx context.Context, id string) (*domain.ChildProfile, error)
	List(ctx context.Context) ([]*domain.ChildProfile, error)
	Update(ctx context.Context, p *domain.ChildProfile) error
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	// GeneratePlan builds, post-processes and persists today's task plan
	// for the child. modelHint selects the generator variant; empty means
	// automatic selection.
	GeneratePlan(ctx context.Context, childID string, modelHint string) ([]*domain.DailyTask, error)
}

type TaskService interface {
	ListByChildAndDate(ctx context.Context, childID string, date time.Time) ([]*domain.DailyTask, error)
	SetCompleted(ctx context.Context, taskID string, completed bool) (*domain.DailyTask, error)
}

type CheckinService interface {
	// Record persists today's joy score and notes for the child.
	Record(ctx context.Context, childID string, joyScore int, parentNotes string) (*domain.DailyCheckin, error)
	ListRecent(ctx context.Context, childID string, limit int) ([]*domain.DailyCheckin, error)
}

type MilestoneService interface {
	// Statuses overlays the fixed milestone catalog with the child's
	// achieved flags.
	Statuses(ctx context.Context, childID string) ([]domain.MilestoneStatus, error)
	SetAchieved(ctx context.Context, childID, agePhase, title string, achieved bool) error
}

// WeeklyProgress summarizes completion over the current week (Monday start).
type WeeklyProgress struct {
	ChildID        string
	WeekStart      time.Time
	TotalTasks     int
	CompletedTasks int
	CompletionRate float64 // fraction in [0,1], rounded to 3 decimals
}

type ProgressService interface {
	Weekly(ctx context.Context, childID string) (*WeeklyProgress, error)
}

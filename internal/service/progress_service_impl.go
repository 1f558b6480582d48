package service

import (
	"context"
	"math"
	"time"

	"github.com/alexanderramin/lifeos/internal/repository"
)

type progressService struct {
	profiles repository.ChildProfileRepo
	tasks    repository.TaskRepo
}

func NewProgressService(profiles repository.ChildProfileRepo, tasks repository.TaskRepo) ProgressService {
	return &progressService{profiles: profiles, tasks: tasks}
}

func (s *progressService) Weekly(ctx context.Context, childID string) (*WeeklyProgress, error) {
	if _, err := s.profiles.GetByID(ctx, childID); err != nil {
		return nil, err
	}

	start := weekStart(time.Now())
	total, completed, err := s.tasks.CountSince(ctx, childID, start)
	if err != nil {
		return nil, err
	}

	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(completed)/float64(total)*1000) / 1000
	}

	return &WeeklyProgress{
		ChildID:        childID,
		WeekStart:      start,
		TotalTasks:     total,
		CompletedTasks: completed,
		CompletionRate: rate,
	}, nil
}

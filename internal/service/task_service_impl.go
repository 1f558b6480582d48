package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lifeos/internal/domain"
	"github.com/alexanderramin/lifeos/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) ListByChildAndDate(ctx context.Context, childID string, date time.Time) ([]*domain.DailyTask, error) {
	return s.tasks.ListByChildAndDate(ctx, childID, dateOnly(date))
}

func (s *taskService) SetCompleted(ctx context.Context, taskID string, completed bool) (*domain.DailyTask, error) {
	var completedAt *time.Time
	if completed {
		now := time.Now().UTC()
		completedAt = &now
	}
	if err := s.tasks.SetCompleted(ctx, taskID, completed, completedAt); err != nil {
		return nil, err
	}
	return s.tasks.GetByID(ctx, taskID)
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/lifeos/internal/domain"
	"github.com/alexanderramin/lifeos/internal/repository"
)

type milestoneService struct {
	profiles   repository.ChildProfileRepo
	milestones repository.MilestoneRepo
}

func NewMilestoneService(profiles repository.ChildProfileRepo, milestones repository.MilestoneRepo) MilestoneService {
	return &milestoneService{profiles: profiles, milestones: milestones}
}

func (s *milestoneService) Statuses(ctx context.Context, childID string) ([]domain.MilestoneStatus, error) {
	if _, err := s.profiles.GetByID(ctx, childID); err != nil {
		return nil, err
	}

	recorded, err := s.milestones.ListByChild(ctx, childID)
	if err != nil {
		return nil, err
	}

	type key struct{ phase, title string }
	achieved := make(map[key]bool, len(recorded))
	for _, m := range recorded {
		achieved[key{m.AgePhase, m.Title}] = m.Achieved
	}

	statuses := make([]domain.MilestoneStatus, 0, len(domain.MilestoneLibrary))
	for _, example := range domain.MilestoneLibrary {
		statuses = append(statuses, domain.MilestoneStatus{
			AgePhase: example.AgePhase,
			Focus:    example.Focus,
			Title:    example.Title,
			Achieved: achieved[key{example.AgePhase, example.Title}],
		})
	}
	return statuses, nil
}

func (s *milestoneService) SetAchieved(ctx context.Context, childID, agePhase, title string, achieved bool) error {
	if _, err := s.profiles.GetByID(ctx, childID); err != nil {
		return err
	}
	if !inLibrary(agePhase, title) {
		return fmt.Errorf("unknown milestone %q in %q", title, agePhase)
	}

	return s.milestones.Upsert(ctx, &domain.Milestone{
		ID:       uuid.New().String(),
		ChildID:  childID,
		AgePhase: agePhase,
		Title:    title,
		Achieved: achieved,
	})
}

func inLibrary(agePhase, title string) bool {
	for _, example := range domain.MilestoneLibrary {
		if example.AgePhase == agePhase && example.Title == title {
			return true
		}
	}
	return false
}

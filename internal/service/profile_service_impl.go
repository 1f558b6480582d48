package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/lifeos/internal/domain"
	"github.com/alexanderramin/lifeos/internal/repository"
)

type profileService struct {
	profiles repository.ChildProfileRepo
}

func NewProfileService(profiles repository.ChildProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Create(ctx context.Context, p *domain.ChildProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.profiles.Create(ctx, p)
}

func (s *profileService) GetByID(ctx context.Context, id string) (*domain.ChildProfile, error) {
	return s.profiles.GetByID(ctx, id)
}

func (s *profileService) List(ctx context.Context) ([]*domain.ChildProfile, error) {
	return s.profiles.List(ctx)
}

func (s *profileService) Update(ctx context.Context, p *domain.ChildProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.profiles.Update(ctx, p)
}

func (s *profileService) Delete(ctx context.Context, id string) error {
	return s.profiles.Delete(ctx, id)
}

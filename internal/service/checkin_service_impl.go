package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/lifeos/internal/domain"
	"github.com/alexanderramin/lifeos/internal/repository"
)

type checkinService struct {
	profiles repository.ChildProfileRepo
	checkins repository.CheckinRepo
}

func NewCheckinService(profiles repository.ChildProfileRepo, checkins repository.CheckinRepo) CheckinService {
	return &checkinService{profiles: profiles, checkins: checkins}
}

func (s *checkinService) Record(ctx context.Context, childID string, joyScore int, parentNotes string) (*domain.DailyCheckin, error) {
	if _, err := s.profiles.GetByID(ctx, childID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	checkin := &domain.DailyCheckin{
		ID:          uuid.New().String(),
		ChildID:     childID,
		JoyScore:    joyScore,
		ParentNotes: parentNotes,
		CheckinDate: dateOnly(now),
		CreatedAt:   now,
	}
	if err := checkin.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkins.Create(ctx, checkin); err != nil {
		return nil, err
	}
	return checkin, nil
}

func (s *checkinService) ListRecent(ctx context.Context, childID string, limit int) ([]*domain.DailyCheckin, error) {
	return s.checkins.ListRecent(ctx, childID, limit)
}

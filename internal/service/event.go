package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type registrationEventService struct {
	eventRepo repository.RegistrationEventRepository
}

func NewRegistrationEventService(eventRepo repository.RegistrationEventRepository) RegistrationEventService {
	return &registrationEventService{eventRepo: eventRepo}
}

func (s *registrationEventService) ListEvents(ctx context.Context) ([]domain.RegistrationEvent, error) {
	return s.eventRepo.List(ctx)
}

func (s *registrationEventService) GetEvent(ctx context.Context, id uuid.UUID) (*domain.RegistrationEvent, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

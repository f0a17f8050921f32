package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository"
)

type motorcycleService struct {
	motorcycleRepo repository.MotorcycleRepository
	rentalRepo     repository.RentalRepository
	publisher      EventPublisher
}

func NewMotorcycleService(
	motorcycleRepo repository.MotorcycleRepository,
	rentalRepo repository.RentalRepository,
	publisher EventPublisher,
) MotorcycleService {
	return &motorcycleService{
		motorcycleRepo: motorcycleRepo,
		rentalRepo:     rentalRepo,
		publisher:      publisher,
	}
}

func (s *motorcycleService) RegisterMotorcycle(ctx context.Context, m *domain.Motorcycle) error {
	existing, err := s.motorcycleRepo.GetByLicensePlate(ctx, m.LicensePlate)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if existing != nil {
		return ErrLicensePlateTaken
	}

	if err := s.motorcycleRepo.Create(ctx, m); err != nil {
		return err
	}

	// Registration event delivery never fails the request.
	if s.publisher != nil {
		msg := domain.MotorcycleRegisteredMessage{
			MotorcycleID: m.ID,
			Year:         m.Year,
			Model:        m.Model,
			LicensePlate: m.LicensePlate,
			RegisteredOn: time.Now().UTC(),
		}
		if err := s.publisher.PublishMotorcycleRegistered(ctx, msg); err != nil {
			logger.Warn("Failed to publish motorcycle registered event", "motorcycle_id", m.ID, "error", err)
		}
	}
	return nil
}

func (s *motorcycleService) GetMotorcycle(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error) {
	m, err := s.motorcycleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMotorcycleNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *motorcycleService) ListMotorcycles(ctx context.Context, plate string) ([]domain.Motorcycle, error) {
	return s.motorcycleRepo.List(ctx, plate)
}

func (s *motorcycleService) UpdateLicensePlate(ctx context.Context, id uuid.UUID, plate string) (*domain.Motorcycle, error) {
	m, err := s.GetMotorcycle(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.LicensePlate != plate {
		existing, err := s.motorcycleRepo.GetByLicensePlate(ctx, plate)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrLicensePlateTaken
		}
	}
	m.LicensePlate = plate
	if err := s.motorcycleRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *motorcycleService) DeleteMotorcycle(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetMotorcycle(ctx, id); err != nil {
		return err
	}
	count, err := s.rentalRepo.CountByMotorcycle(ctx, id)
	if err != nil {
		return fmt.Errorf("checking rentals for motorcycle %s: %w", id, err)
	}
	if count > 0 {
		return ErrMotorcycleHasRentals
	}
	return s.motorcycleRepo.Delete(ctx, id)
}

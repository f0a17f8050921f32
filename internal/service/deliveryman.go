package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type deliverymanService struct {
	deliverymanRepo repository.DeliverymanRepository
}

func NewDeliverymanService(deliverymanRepo repository.DeliverymanRepository) DeliverymanService {
	return &deliverymanService{deliverymanRepo: deliverymanRepo}
}

func (s *deliverymanService) CreateDeliveryman(ctx context.Context, d *domain.Deliveryman) error {
	existing, err := s.deliverymanRepo.GetByCNPJ(ctx, d.CNPJ)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if existing != nil {
		return ErrCNPJTaken
	}
	return s.deliverymanRepo.Create(ctx, d)
}

func (s *deliverymanService) GetDeliveryman(ctx context.Context, id uuid.UUID) (*domain.Deliveryman, error) {
	d, err := s.deliverymanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeliverymanNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *deliverymanService) ListDeliverymen(ctx context.Context) ([]domain.Deliveryman, error) {
	return s.deliverymanRepo.List(ctx)
}

func (s *deliverymanService) UpdateLicenseImage(ctx context.Context, id uuid.UUID, imageURL string) (*domain.Deliveryman, error) {
	d, err := s.GetDeliveryman(ctx, id)
	if err != nil {
		return nil, err
	}
	d.LicenseImageURL = imageURL
	if err := s.deliverymanRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// IsEligibleForRental gates rental creation: only categories A and AB
// permit operating a motorcycle.
func (s *deliverymanService) IsEligibleForRental(d *domain.Deliveryman) bool {
	return d.LicenseType == domain.LicenseTypeA || d.LicenseType == domain.LicenseTypeAB
}

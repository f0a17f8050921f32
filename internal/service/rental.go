package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/pricing"
	"motorent-backend/internal/repository"
)

type rentalService struct {
	rentalRepo      repository.RentalRepository
	deliverymanRepo repository.DeliverymanRepository
	deliverymanSvc  DeliverymanService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	deliverymanRepo repository.DeliverymanRepository,
	deliverymanSvc DeliverymanService,
) RentalService {
	return &rentalService{
		rentalRepo:      rentalRepo,
		deliverymanRepo: deliverymanRepo,
		deliverymanSvc:  deliverymanSvc,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, motorcycleID, deliverymanID uuid.UUID, plan domain.RentalPlan) (*domain.Rental, error) {
	deliveryman, err := s.deliverymanRepo.GetByID(ctx, deliverymanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeliverymanNotFound
		}
		return nil, err
	}
	if !s.deliverymanSvc.IsEligibleForRental(deliveryman) {
		return nil, ErrDeliverymanNotEligible
	}

	// Rentals never begin on the day they are created: the start date
	// is the next calendar day at UTC midnight, whatever the current
	// time of day.
	startDate := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	endDate := startDate.AddDate(0, 0, plan.Days())

	totalCost, err := pricing.InitialCostCents(plan, startDate, endDate)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		MotorcycleID:    motorcycleID,
		DeliverymanID:   deliverymanID,
		StartDate:       startDate,
		EndDate:         endDate,
		ExpectedEndDate: endDate,
		Plan:            plan,
		TotalCostCents:  totalCost,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) ReturnMotorcycle(ctx context.Context, rentalID uuid.UUID, actualReturn time.Time) (int64, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrRentalNotFound
		}
		return 0, err
	}
	if rental.Returned() {
		return 0, ErrRentalAlreadyReturned
	}

	totalCost, err := pricing.FinalCostCents(rental.Plan, rental.StartDate, rental.ExpectedEndDate, actualReturn)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	rental.EndDate = actualReturn
	rental.TotalCostCents = totalCost
	rental.ReturnedOn = &now
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return 0, err
	}
	return totalCost, nil
}

func (s *rentalService) GetRental(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context, deliverymanID uuid.UUID) ([]domain.Rental, error) {
	if deliverymanID != uuid.Nil {
		return s.rentalRepo.ListByDeliveryman(ctx, deliverymanID)
	}
	return s.rentalRepo.List(ctx)
}

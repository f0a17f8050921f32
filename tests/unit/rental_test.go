package unit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/pricing"
	"motorent-backend/internal/service"
)

func newRentalService(rentalRepo *MockRentalRepo, deliverymanRepo *MockDeliverymanRepo) service.RentalService {
	deliverymanSvc := service.NewDeliverymanService(deliverymanRepo)
	return service.NewRentalService(rentalRepo, deliverymanRepo, deliverymanSvc)
}

func TestRentalService_CreateRental(t *testing.T) {
	ctx := context.Background()
	motorcycleID := uuid.New()
	deliverymanID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		deliverymanRepo := new(MockDeliverymanRepo)
		svc := newRentalService(rentalRepo, deliverymanRepo)

		deliverymanRepo.On("GetByID", ctx, deliverymanID).
			Return(&domain.Deliveryman{ID: deliverymanID, Name: "Joao", LicenseType: domain.LicenseTypeA}, nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rental, err := svc.CreateRental(ctx, motorcycleID, deliverymanID, domain.PlanSevenDays)
		assert.NoError(t, err)
		assert.NotNil(t, rental)
		assert.Equal(t, motorcycleID, rental.MotorcycleID)
		assert.Equal(t, deliverymanID, rental.DeliverymanID)
		assert.Equal(t, domain.PlanSevenDays, rental.Plan)
		assert.Equal(t, int64(7*3000), rental.TotalCostCents)
		assert.Equal(t, rental.StartDate.AddDate(0, 0, 7), rental.ExpectedEndDate)
		assert.Equal(t, rental.ExpectedEndDate, rental.EndDate)
		assert.Nil(t, rental.ReturnedOn)
	})

	t.Run("Start date is always tomorrow at UTC midnight", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		deliverymanRepo := new(MockDeliverymanRepo)
		svc := newRentalService(rentalRepo, deliverymanRepo)

		deliverymanRepo.On("GetByID", ctx, deliverymanID).
			Return(&domain.Deliveryman{ID: deliverymanID, LicenseType: domain.LicenseTypeAB}, nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rental, err := svc.CreateRental(ctx, motorcycleID, deliverymanID, domain.PlanThirtyDays)
		assert.NoError(t, err)

		tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
		assert.Equal(t, tomorrow, rental.StartDate)
		assert.Equal(t, time.Duration(0), rental.StartDate.Sub(rental.StartDate.Truncate(24*time.Hour)))
	})

	t.Run("Category B deliveryman is not eligible", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		deliverymanRepo := new(MockDeliverymanRepo)
		svc := newRentalService(rentalRepo, deliverymanRepo)

		deliverymanRepo.On("GetByID", ctx, deliverymanID).
			Return(&domain.Deliveryman{ID: deliverymanID, LicenseType: domain.LicenseTypeB}, nil)

		rental, err := svc.CreateRental(ctx, motorcycleID, deliverymanID, domain.PlanSevenDays)
		assert.ErrorIs(t, err, service.ErrDeliverymanNotEligible)
		assert.Nil(t, rental)
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown deliveryman", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		deliverymanRepo := new(MockDeliverymanRepo)
		svc := newRentalService(rentalRepo, deliverymanRepo)

		deliverymanRepo.On("GetByID", ctx, deliverymanID).Return(nil, errNoRows())

		rental, err := svc.CreateRental(ctx, motorcycleID, deliverymanID, domain.PlanSevenDays)
		assert.ErrorIs(t, err, service.ErrDeliverymanNotFound)
		assert.Nil(t, rental)
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRentalService_ReturnMotorcycle(t *testing.T) {
	ctx := context.Background()
	rentalID := uuid.New()
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	openRental := func(plan domain.RentalPlan) *domain.Rental {
		end := start.AddDate(0, 0, plan.Days())
		cost, _ := pricing.InitialCostCents(plan, start, end)
		return &domain.Rental{
			ID:              rentalID,
			MotorcycleID:    uuid.New(),
			DeliverymanID:   uuid.New(),
			StartDate:       start,
			EndDate:         end,
			ExpectedEndDate: end,
			Plan:            plan,
			TotalCostCents:  cost,
		}
	}

	t.Run("Early return applies the penalty and closes the rental", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		deliverymanRepo := new(MockDeliverymanRepo)
		svc := newRentalService(rentalRepo, deliverymanRepo)

		rental := openRental(domain.PlanSevenDays)
		returnDate := start.AddDate(0, 0, 5)

		rentalRepo.On("GetByID", ctx, rentalID).Return(rental, nil)
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		cost, err := svc.ReturnMotorcycle(ctx, rentalID, returnDate)
		assert.NoError(t, err)
		assert.Equal(t, int64(16200), cost)
		assert.Equal(t, returnDate, rental.EndDate)
		assert.Equal(t, int64(16200), rental.TotalCostCents)
		assert.NotNil(t, rental.ReturnedOn)
	})

	t.Run("Late return adds the flat daily fee", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		deliverymanRepo := new(MockDeliverymanRepo)
		svc := newRentalService(rentalRepo, deliverymanRepo)

		rental := openRental(domain.PlanFifteenDays)
		returnDate := start.AddDate(0, 0, 20)

		rentalRepo.On("GetByID", ctx, rentalID).Return(rental, nil)
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		cost, err := svc.ReturnMotorcycle(ctx, rentalID, returnDate)
		assert.NoError(t, err)
		assert.Equal(t, int64(67000), cost)
	})

	t.Run("Unknown rental", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		deliverymanRepo := new(MockDeliverymanRepo)
		svc := newRentalService(rentalRepo, deliverymanRepo)

		rentalRepo.On("GetByID", ctx, rentalID).Return(nil, errNoRows())

		_, err := svc.ReturnMotorcycle(ctx, rentalID, start.AddDate(0, 0, 5))
		assert.ErrorIs(t, err, service.ErrRentalNotFound)
	})

	t.Run("Second return is rejected", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		deliverymanRepo := new(MockDeliverymanRepo)
		svc := newRentalService(rentalRepo, deliverymanRepo)

		rental := openRental(domain.PlanSevenDays)
		returned := start.AddDate(0, 0, 5)
		rental.ReturnedOn = &returned

		rentalRepo.On("GetByID", ctx, rentalID).Return(rental, nil)

		_, err := svc.ReturnMotorcycle(ctx, rentalID, start.AddDate(0, 0, 6))
		assert.ErrorIs(t, err, service.ErrRentalAlreadyReturned)
		rentalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Return before start date is rejected", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		deliverymanRepo := new(MockDeliverymanRepo)
		svc := newRentalService(rentalRepo, deliverymanRepo)

		rental := openRental(domain.PlanSevenDays)
		rentalRepo.On("GetByID", ctx, rentalID).Return(rental, nil)

		_, err := svc.ReturnMotorcycle(ctx, rentalID, start.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, pricing.ErrInvalidReturnDate)
		rentalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

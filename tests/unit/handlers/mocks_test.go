package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"motorent-backend/internal/domain"
)

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(ctx context.Context, motorcycleID, deliverymanID uuid.UUID, plan domain.RentalPlan) (*domain.Rental, error) {
	args := m.Called(ctx, motorcycleID, deliverymanID, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ReturnMotorcycle(ctx context.Context, rentalID uuid.UUID, actualReturn time.Time) (int64, error) {
	args := m.Called(ctx, rentalID, actualReturn)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRentalService) GetRental(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListRentals(ctx context.Context, deliverymanID uuid.UUID) ([]domain.Rental, error) {
	args := m.Called(ctx, deliverymanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockMotorcycleService
type MockMotorcycleService struct {
	mock.Mock
}

func (m *MockMotorcycleService) RegisterMotorcycle(ctx context.Context, mc *domain.Motorcycle) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}
func (m *MockMotorcycleService) GetMotorcycle(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleService) ListMotorcycles(ctx context.Context, plate string) ([]domain.Motorcycle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleService) UpdateLicensePlate(ctx context.Context, id uuid.UUID, plate string) (*domain.Motorcycle, error) {
	args := m.Called(ctx, id, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleService) DeleteMotorcycle(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string, profile domain.UserProfile) (*domain.User, error) {
	args := m.Called(ctx, username, password, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

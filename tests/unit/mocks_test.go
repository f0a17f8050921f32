package unit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"motorent-backend/internal/domain"
)

// MockMotorcycleRepo
type MockMotorcycleRepo struct {
	mock.Mock
}

func (m *MockMotorcycleRepo) Create(ctx context.Context, mc *domain.Motorcycle) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) GetByLicensePlate(ctx context.Context, plate string) (*domain.Motorcycle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) List(ctx context.Context, plate string) ([]domain.Motorcycle, error) {
	args := m.Called(ctx, plate)
	return args.Get(0).([]domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) Update(ctx context.Context, mc *domain.Motorcycle) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDeliverymanRepo
type MockDeliverymanRepo struct {
	mock.Mock
}

func (m *MockDeliverymanRepo) Create(ctx context.Context, d *domain.Deliveryman) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliverymanRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deliveryman, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deliveryman), args.Error(1)
}
func (m *MockDeliverymanRepo) GetByCNPJ(ctx context.Context, cnpj string) (*domain.Deliveryman, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deliveryman), args.Error(1)
}
func (m *MockDeliverymanRepo) List(ctx context.Context) ([]domain.Deliveryman, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Deliveryman), args.Error(1)
}
func (m *MockDeliverymanRepo) Update(ctx context.Context, d *domain.Deliveryman) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliverymanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByDeliveryman(ctx context.Context, deliverymanID uuid.UUID) ([]domain.Rental, error) {
	args := m.Called(ctx, deliverymanID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) CountByMotorcycle(ctx context.Context, motorcycleID uuid.UUID) (int64, error) {
	args := m.Called(ctx, motorcycleID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockRegistrationEventRepo
type MockRegistrationEventRepo struct {
	mock.Mock
}

func (m *MockRegistrationEventRepo) Create(ctx context.Context, e *domain.RegistrationEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockRegistrationEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RegistrationEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistrationEvent), args.Error(1)
}
func (m *MockRegistrationEventRepo) List(ctx context.Context) ([]domain.RegistrationEvent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RegistrationEvent), args.Error(1)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishMotorcycleRegistered(ctx context.Context, msg domain.MotorcycleRegisteredMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

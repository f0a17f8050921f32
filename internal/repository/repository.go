package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
)

type MotorcycleRepository interface {
	Create(ctx context.Context, m *domain.Motorcycle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error)
	GetByLicensePlate(ctx context.Context, plate string) (*domain.Motorcycle, error)
	List(ctx context.Context, plate string) ([]domain.Motorcycle, error)
	Update(ctx context.Context, m *domain.Motorcycle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DeliverymanRepository interface {
	Create(ctx context.Context, d *domain.Deliveryman) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deliveryman, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*domain.Deliveryman, error)
	List(ctx context.Context) ([]domain.Deliveryman, error)
	Update(ctx context.Context, d *domain.Deliveryman) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RentalRepository interface {
	Create(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	Update(ctx context.Context, r *domain.Rental) error
	ListByDeliveryman(ctx context.Context, deliverymanID uuid.UUID) ([]domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error)
	CountByMotorcycle(ctx context.Context, motorcycleID uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type RegistrationEventRepository interface {
	Create(ctx context.Context, e *domain.RegistrationEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RegistrationEvent, error)
	List(ctx context.Context) ([]domain.RegistrationEvent, error)
}

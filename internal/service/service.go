package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
)

type RentalService interface {
	// CreateRental opens a rental starting tomorrow for an eligible
	// deliveryman and prices the full planned duration up front.
	CreateRental(ctx context.Context, motorcycleID, deliverymanID uuid.UUID, plan domain.RentalPlan) (*domain.Rental, error)
	// ReturnMotorcycle closes a rental, recomputes the final cost from
	// the actual return date and returns it.
	ReturnMotorcycle(ctx context.Context, rentalID uuid.UUID, actualReturn time.Time) (int64, error)
	GetRental(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	// ListRentals lists all rentals, or only one deliveryman's when
	// deliverymanID is non-nil.
	ListRentals(ctx context.Context, deliverymanID uuid.UUID) ([]domain.Rental, error)
}

type MotorcycleService interface {
	RegisterMotorcycle(ctx context.Context, m *domain.Motorcycle) error
	GetMotorcycle(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error)
	ListMotorcycles(ctx context.Context, plate string) ([]domain.Motorcycle, error)
	UpdateLicensePlate(ctx context.Context, id uuid.UUID, plate string) (*domain.Motorcycle, error)
	DeleteMotorcycle(ctx context.Context, id uuid.UUID) error
}

type DeliverymanService interface {
	CreateDeliveryman(ctx context.Context, d *domain.Deliveryman) error
	GetDeliveryman(ctx context.Context, id uuid.UUID) (*domain.Deliveryman, error)
	ListDeliverymen(ctx context.Context) ([]domain.Deliveryman, error)
	UpdateLicenseImage(ctx context.Context, id uuid.UUID, imageURL string) (*domain.Deliveryman, error)
	IsEligibleForRental(d *domain.Deliveryman) bool
}

type AuthService interface {
	Register(ctx context.Context, username, password string, profile domain.UserProfile) (*domain.User, error)
	// Login returns a signed access token for valid credentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

type RegistrationEventService interface {
	ListEvents(ctx context.Context) ([]domain.RegistrationEvent, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*domain.RegistrationEvent, error)
}

// EventPublisher pushes fleet events to the message bus. Publishing is
// fire-and-forget from the caller's point of view.
type EventPublisher interface {
	PublishMotorcycleRegistered(ctx context.Context, msg domain.MotorcycleRegisteredMessage) error
}

package postgres

import (
	"database/sql"

	"motorent-backend/internal/repository"

	_ "github.com/lib/pq"
)

// Store bundles all Postgres-backed repositories behind one value.
type Store struct {
	db *sql.DB
	repository.MotorcycleRepository
	repository.DeliverymanRepository
	repository.RentalRepository
	repository.UserRepository
	repository.RegistrationEventRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                          db,
		MotorcycleRepository:        NewMotorcycleRepository(db),
		DeliverymanRepository:       NewDeliverymanRepository(db),
		RentalRepository:            NewRentalRepository(db),
		UserRepository:              NewUserRepository(db),
		RegistrationEventRepository: NewRegistrationEventRepository(db),
	}
}

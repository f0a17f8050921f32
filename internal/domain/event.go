package domain

import (
	"time"

	"github.com/google/uuid"
)

// MotorcycleRegisteredMessage is the wire payload published when a
// motorcycle is added to the fleet.
type MotorcycleRegisteredMessage struct {
	MotorcycleID uuid.UUID `json:"motorcycle_id"`
	Year         int       `json:"year"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"license_plate"`
	RegisteredOn time.Time `json:"registered_on"`
}

// RegistrationEvent is the persisted record written by the event
// consumer for motorcycles whose model year is being tracked.
type RegistrationEvent struct {
	ID               uuid.UUID `json:"id"`
	MotorcycleID     uuid.UUID `json:"motorcycle_id"`
	RegistrationDate time.Time `json:"registration_date"`
	Message          string    `json:"message"`
	CreatedOn        time.Time `json:"created_on"`
}

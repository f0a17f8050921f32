package domain

import (
	"time"

	"github.com/google/uuid"
)

// Motorcycle is a fleet vehicle available for rental. LicensePlate is
// unique across the fleet.
type Motorcycle struct {
	ID           uuid.UUID `json:"id"`
	Year         int       `json:"year"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"license_plate"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

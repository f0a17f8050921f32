package domain

import (
	"time"

	"github.com/google/uuid"
)

type LicenseType string

const (
	LicenseTypeA  LicenseType = "A"
	LicenseTypeB  LicenseType = "B"
	LicenseTypeAB LicenseType = "AB"
)

// Deliveryman is a registered courier. Only license categories A and AB
// qualify for motorcycle rentals.
type Deliveryman struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	CNPJ            string      `json:"cnpj"`
	BirthDate       time.Time   `json:"birth_date"`
	LicenseNumber   string      `json:"license_number"`
	LicenseType     LicenseType `json:"license_type"`
	LicenseImageURL string      `json:"license_image_url,omitempty"`
	CreatedOn       time.Time   `json:"created_on"`
	UpdatedOn       time.Time   `json:"updated_on"`
}

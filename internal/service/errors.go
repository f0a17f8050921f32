package service

import "errors"

// Business-rule and not-found failures surfaced to callers as distinct
// kinds so the HTTP layer can branch deterministically.
var (
	ErrMotorcycleNotFound   = errors.New("motorcycle not found")
	ErrDeliverymanNotFound  = errors.New("deliveryman not found")
	ErrRentalNotFound       = errors.New("rental not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrEventNotFound        = errors.New("registration event not found")
	ErrDeliverymanNotEligible = errors.New("deliveryman is not eligible for rental")
	ErrLicensePlateTaken    = errors.New("license plate already registered")
	ErrCNPJTaken            = errors.New("cnpj already registered")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrMotorcycleHasRentals = errors.New("motorcycle has rentals and cannot be deleted")
	ErrRentalAlreadyReturned = errors.New("rental has already been returned")
)

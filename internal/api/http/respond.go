package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"motorent-backend/internal/logger"
	"motorent-backend/internal/pricing"
	"motorent-backend/internal/service"
)

type errorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Message: msg})
}

// respondServiceError translates the service error taxonomy to HTTP
// statuses. Unrecognized errors, including ErrInvalidPlan escaping the
// closed plan set, are unexpected and map to 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMotorcycleNotFound),
		errors.Is(err, service.ErrDeliverymanNotFound),
		errors.Is(err, service.ErrRentalNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrEventNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDeliverymanNotEligible),
		errors.Is(err, service.ErrRentalAlreadyReturned),
		errors.Is(err, pricing.ErrInvalidReturnDate):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrLicensePlateTaken),
		errors.Is(err, service.ErrCNPJTaken),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrMotorcycleHasRentals):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"motorent-backend/internal/domain"
)

// NewRouter assembles the REST API. Auth endpoints are public;
// everything else requires a valid access token, and fleet management
// additionally requires the admin profile.
func NewRouter(
	authMw *AuthMiddleware,
	authHandler *AuthHandler,
	motorcycleHandler *MotorcycleHandler,
	deliverymanHandler *DeliverymanHandler,
	rentalHandler *RentalHandler,
	eventHandler *RegistrationEventHandler,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/auth/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMw.Authenticate)

	api.HandleFunc("/motorcycles", RequireProfile(domain.ProfileAdmin, motorcycleHandler.Create)).Methods(http.MethodPost)
	api.HandleFunc("/motorcycles", motorcycleHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/motorcycles/{id}", motorcycleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/motorcycles/{id}/license-plate", RequireProfile(domain.ProfileAdmin, motorcycleHandler.UpdateLicensePlate)).Methods(http.MethodPut)
	api.HandleFunc("/motorcycles/{id}", RequireProfile(domain.ProfileAdmin, motorcycleHandler.Delete)).Methods(http.MethodDelete)

	api.HandleFunc("/deliverymen", deliverymanHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/deliverymen", deliverymanHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/deliverymen/{id}", deliverymanHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/deliverymen/{id}/license-image", deliverymanHandler.UpdateLicenseImage).Methods(http.MethodPut)

	api.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/return", rentalHandler.Return).Methods(http.MethodPut)

	api.HandleFunc("/registration-events", eventHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/registration-events/{id}", eventHandler.Get).Methods(http.MethodGet)

	return r
}

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	MotorcycleID  uuid.UUID `json:"motorcycle_id"`
	DeliverymanID uuid.UUID `json:"deliveryman_id"`
	Plan          int       `json:"plan"`
}

type returnRentalRequest struct {
	ReturnDate string `json:"return_date"`
}

type returnRentalResponse struct {
	RentalID       uuid.UUID `json:"rental_id"`
	TotalCostCents int64     `json:"total_cost_cents"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MotorcycleID == uuid.Nil || req.DeliverymanID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "motorcycle_id and deliveryman_id are required")
		return
	}
	plan := domain.RentalPlan(req.Plan)
	if !plan.Valid() {
		respondError(w, http.StatusBadRequest, "plan must be one of 7, 15, 30, 45, 50")
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), req.MotorcycleID, req.DeliverymanID, plan)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}
	rental, err := h.rentalSvc.GetRental(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	deliverymanID := uuid.Nil
	if raw := r.URL.Query().Get("deliveryman_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid deliveryman_id")
			return
		}
		deliverymanID = id
	}

	rentals, err := h.rentalSvc.ListRentals(r.Context(), deliverymanID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}
	var req returnRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	returnDate, err := time.Parse("2006-01-02", req.ReturnDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "return_date must be YYYY-MM-DD")
		return
	}

	totalCost, err := h.rentalSvc.ReturnMotorcycle(r.Context(), id, returnDate.UTC())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, returnRentalResponse{RentalID: id, TotalCostCents: totalCost})
}

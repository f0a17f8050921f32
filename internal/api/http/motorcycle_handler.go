package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

type MotorcycleHandler struct {
	motorcycleSvc service.MotorcycleService
}

func NewMotorcycleHandler(motorcycleSvc service.MotorcycleService) *MotorcycleHandler {
	return &MotorcycleHandler{motorcycleSvc: motorcycleSvc}
}

type createMotorcycleRequest struct {
	Year         int    `json:"year"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
}

type updateLicensePlateRequest struct {
	LicensePlate string `json:"license_plate"`
}

func (h *MotorcycleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMotorcycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Year == 0 || req.Model == "" || req.LicensePlate == "" {
		respondError(w, http.StatusBadRequest, "year, model and license_plate are required")
		return
	}

	m := &domain.Motorcycle{
		Year:         req.Year,
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
	}
	if err := h.motorcycleSvc.RegisterMotorcycle(r.Context(), m); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, m)
}

func (h *MotorcycleHandler) List(w http.ResponseWriter, r *http.Request) {
	motorcycles, err := h.motorcycleSvc.ListMotorcycles(r.Context(), r.URL.Query().Get("plate"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if motorcycles == nil {
		motorcycles = []domain.Motorcycle{}
	}
	respondJSON(w, http.StatusOK, motorcycles)
}

func (h *MotorcycleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid motorcycle id")
		return
	}
	m, err := h.motorcycleSvc.GetMotorcycle(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (h *MotorcycleHandler) UpdateLicensePlate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid motorcycle id")
		return
	}
	var req updateLicensePlateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.LicensePlate == "" {
		respondError(w, http.StatusBadRequest, "license_plate is required")
		return
	}

	m, err := h.motorcycleSvc.UpdateLicensePlate(r.Context(), id, req.LicensePlate)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (h *MotorcycleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid motorcycle id")
		return
	}
	if err := h.motorcycleSvc.DeleteMotorcycle(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

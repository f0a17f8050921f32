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

type DeliverymanHandler struct {
	deliverymanSvc service.DeliverymanService
}

func NewDeliverymanHandler(deliverymanSvc service.DeliverymanService) *DeliverymanHandler {
	return &DeliverymanHandler{deliverymanSvc: deliverymanSvc}
}

type createDeliverymanRequest struct {
	Name            string `json:"name"`
	CNPJ            string `json:"cnpj"`
	BirthDate       string `json:"birth_date"`
	LicenseNumber   string `json:"license_number"`
	LicenseType     string `json:"license_type"`
	LicenseImageURL string `json:"license_image_url"`
}

type updateLicenseImageRequest struct {
	LicenseImageURL string `json:"license_image_url"`
}

func (h *DeliverymanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDeliverymanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.CNPJ == "" || req.LicenseNumber == "" {
		respondError(w, http.StatusBadRequest, "name, cnpj and license_number are required")
		return
	}
	licenseType := domain.LicenseType(req.LicenseType)
	switch licenseType {
	case domain.LicenseTypeA, domain.LicenseTypeB, domain.LicenseTypeAB:
	default:
		respondError(w, http.StatusBadRequest, "license_type must be A, B or AB")
		return
	}
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
		return
	}

	d := &domain.Deliveryman{
		Name:            req.Name,
		CNPJ:            req.CNPJ,
		BirthDate:       birthDate,
		LicenseNumber:   req.LicenseNumber,
		LicenseType:     licenseType,
		LicenseImageURL: req.LicenseImageURL,
	}
	if err := h.deliverymanSvc.CreateDeliveryman(r.Context(), d); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, d)
}

func (h *DeliverymanHandler) List(w http.ResponseWriter, r *http.Request) {
	deliverymen, err := h.deliverymanSvc.ListDeliverymen(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if deliverymen == nil {
		deliverymen = []domain.Deliveryman{}
	}
	respondJSON(w, http.StatusOK, deliverymen)
}

func (h *DeliverymanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid deliveryman id")
		return
	}
	d, err := h.deliverymanSvc.GetDeliveryman(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

func (h *DeliverymanHandler) UpdateLicenseImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid deliveryman id")
		return
	}
	var req updateLicenseImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.LicenseImageURL == "" {
		respondError(w, http.StatusBadRequest, "license_image_url is required")
		return
	}

	d, err := h.deliverymanSvc.UpdateLicenseImage(r.Context(), id, req.LicenseImageURL)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

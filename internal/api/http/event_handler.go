package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

type RegistrationEventHandler struct {
	eventSvc service.RegistrationEventService
}

func NewRegistrationEventHandler(eventSvc service.RegistrationEventService) *RegistrationEventHandler {
	return &RegistrationEventHandler{eventSvc: eventSvc}
}

func (h *RegistrationEventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventSvc.ListEvents(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if events == nil {
		events = []domain.RegistrationEvent{}
	}
	respondJSON(w, http.StatusOK, events)
}

func (h *RegistrationEventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}
	event, err := h.eventSvc.GetEvent(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

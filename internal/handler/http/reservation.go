package http

import (
	"log/slog"
	"net/http"

	"github.com/bellavista/ordering/pkg/httputil"
	"github.com/bellavista/ordering/pkg/validator"

	"github.com/bellavista/ordering/internal/service"
)

// ReservationHandler serves the table reservation endpoint.
type ReservationHandler struct {
	reservations *service.ReservationService
	logger       *slog.Logger
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(reservations *service.ReservationService, log *slog.Logger) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, logger: log}
}

// Create accepts a reservation request.
// POST /api/v1/reservations
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.ReservationRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	res, err := h.reservations.Reserve(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: res})
}

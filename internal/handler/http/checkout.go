package http

import (
	"log/slog"
	"net/http"

	"github.com/bellavista/ordering/pkg/httputil"
	"github.com/bellavista/ordering/pkg/validator"

	"github.com/bellavista/ordering/internal/domain"
	"github.com/bellavista/ordering/internal/service"
)

// CheckoutHandler serves the checkout endpoints.
type CheckoutHandler struct {
	checkout *service.CheckoutService
	logger   *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkout *service.CheckoutService, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, logger: log}
}

type submitRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	OrderType     string `json:"order_type"`
	PaymentMethod string `json:"payment_method"`
	Instructions  string `json:"instructions"`
}

// Submit starts a checkout for the session's cart.
// POST /api/v1/checkout
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	info := domain.CustomerInfo{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		OrderType:     domain.OrderType(req.OrderType),
		PaymentMethod: req.PaymentMethod,
		Instructions:  req.Instructions,
	}

	status, err := h.checkout.Submit(r.Context(), sessionID(r), info)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	code := http.StatusAccepted
	if status.State == domain.CheckoutStateValidationFailed {
		code = http.StatusUnprocessableEntity
	}
	httputil.WriteJSON(w, code, httputil.Response{Data: status})
}

// Status reports the session's checkout state. The storefront polls this
// while the submission settles.
// GET /api/v1/checkout
func (h *CheckoutHandler) Status(w http.ResponseWriter, r *http.Request) {
	status := h.checkout.Status(r.Context(), sessionID(r))
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: status})
}

// Dismiss acknowledges a settled checkout and returns the session to idle.
// DELETE /api/v1/checkout
func (h *CheckoutHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	status, err := h.checkout.Dismiss(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: status})
}

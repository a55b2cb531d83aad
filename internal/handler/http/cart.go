// Package http exposes the ordering API over HTTP using chi.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/bellavista/ordering/pkg/errors"
	"github.com/bellavista/ordering/pkg/httputil"
	"github.com/bellavista/ordering/pkg/validator"

	"github.com/bellavista/ordering/internal/domain"
	"github.com/bellavista/ordering/internal/service"
	"github.com/bellavista/ordering/internal/view"
)

// CartHandler serves the cart endpoints.
type CartHandler struct {
	cart   *service.CartService
	logger *slog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{cart: cart, logger: log}
}

type addItemRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0,lte=99"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta" validate:"required,gte=-99,lte=99"`
}

// Get renders the cart for the session.
// GET /api/v1/cart?order_type=pickup
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderType, err := orderTypeQuery(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	cart, err := h.cart.GetCart(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.render(w, cart, orderType)
}

// AddItem adds a menu item to the cart.
// POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	orderType, err := orderTypeQuery(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	var req addItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.cart.AddItem(r.Context(), sessionID(r), req.ItemID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.render(w, cart, orderType)
}

// UpdateQuantity adjusts a line's quantity by a signed delta.
// PATCH /api/v1/cart/items/{itemID}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	orderType, err := orderTypeQuery(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	var req updateQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	itemID := chi.URLParam(r, "itemID")
	cart, err := h.cart.UpdateQuantity(r.Context(), sessionID(r), itemID, req.Delta)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.render(w, cart, orderType)
}

// RemoveItem removes a line from the cart.
// DELETE /api/v1/cart/items/{itemID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	orderType, err := orderTypeQuery(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	itemID := chi.URLParam(r, "itemID")
	cart, err := h.cart.RemoveItem(r.Context(), sessionID(r), itemID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.render(w, cart, orderType)
}

// Clear empties the cart.
// DELETE /api/v1/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context(), sessionID(r)); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) render(w http.ResponseWriter, cart *domain.Cart, orderType domain.OrderType) {
	v := view.RenderCart(cart, cart.ComputeTotals(orderType))
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: v})
}

// orderTypeQuery reads the order_type query parameter, defaulting to pickup.
// The order type only affects the delivery fee line in the rendered totals.
func orderTypeQuery(r *http.Request) (domain.OrderType, error) {
	raw := r.URL.Query().Get("order_type")
	if raw == "" {
		return domain.OrderTypePickup, nil
	}

	orderType := domain.OrderType(raw)
	if !orderType.Valid() {
		return "", apperrors.InvalidInput("order_type must be one of: delivery pickup")
	}
	return orderType, nil
}

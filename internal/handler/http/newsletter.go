package http

import (
	"log/slog"
	"net/http"

	"github.com/bellavista/ordering/pkg/httputil"
	"github.com/bellavista/ordering/pkg/validator"

	"github.com/bellavista/ordering/internal/service"
)

// NewsletterHandler serves the newsletter signup endpoint.
type NewsletterHandler struct {
	newsletter *service.NewsletterService
	logger     *slog.Logger
}

// NewNewsletterHandler creates a new newsletter handler.
func NewNewsletterHandler(newsletter *service.NewsletterService, log *slog.Logger) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter, logger: log}
}

// Subscribe accepts a newsletter signup.
// POST /api/v1/newsletter/subscriptions
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req service.SubscribeRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	sub, err := h.newsletter.Subscribe(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: sub})
}

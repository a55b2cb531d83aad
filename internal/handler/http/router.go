package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bellavista/ordering/pkg/health"
	"github.com/bellavista/ordering/pkg/middleware"
)

// RouterDeps bundles the handlers and cross-cutting pieces the router mounts.
type RouterDeps struct {
	Cart          *CartHandler
	Checkout      *CheckoutHandler
	Menu          *MenuHandler
	Reservations  *ReservationHandler
	Newsletter    *NewsletterHandler
	Health        *health.Handler
	Logger        *slog.Logger
	AllowedOrigin string
}

// NewRouter assembles the HTTP routes with the standard middleware stack.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.PrometheusMetrics("ordering"))
	r.Use(chimiddleware.StripSlashes)
	r.Use(CORS(deps.AllowedOrigin))

	r.Get("/health/live", deps.Health.LivenessHandler())
	r.Get("/health/ready", deps.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/menu", deps.Menu.List)

		r.Post("/reservations", deps.Reservations.Create)
		r.Post("/newsletter/subscriptions", deps.Newsletter.Subscribe)

		// Cart and checkout are session scoped.
		r.Group(func(r chi.Router) {
			r.Use(RequireSession)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", deps.Cart.Get)
				r.Delete("/", deps.Cart.Clear)
				r.Post("/items", deps.Cart.AddItem)
				r.Patch("/items/{itemID}", deps.Cart.UpdateQuantity)
				r.Delete("/items/{itemID}", deps.Cart.RemoveItem)
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", deps.Checkout.Submit)
				r.Get("/", deps.Checkout.Status)
				r.Delete("/", deps.Checkout.Dismiss)
			})
		})
	})

	return r
}

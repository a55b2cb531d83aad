// Package app wires the ordering service together and manages its lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/bellavista/ordering/pkg/health"
	"github.com/bellavista/ordering/pkg/kafka"

	"github.com/bellavista/ordering/internal/catalog"
	"github.com/bellavista/ordering/internal/config"
	"github.com/bellavista/ordering/internal/event"
	httphandler "github.com/bellavista/ordering/internal/handler/http"
	"github.com/bellavista/ordering/internal/repository"
	memoryrepo "github.com/bellavista/ordering/internal/repository/memory"
	redisrepo "github.com/bellavista/ordering/internal/repository/redis"
	"github.com/bellavista/ordering/internal/service"
)

// App is the assembled ordering service.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	server   *http.Server
	redis    *redis.Client
	producer *kafka.Producer
	checkout *service.CheckoutService
}

// New builds the service from configuration.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	healthHandler := health.NewHandler()

	var (
		cartRepo    repository.CartRepository
		redisClient *redis.Client
	)
	switch cfg.CartStore {
	case config.StoreRedis:
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cartRepo = redisrepo.NewCartRepository(redisClient, cfg.CartTTL())
		healthHandler.Register("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	case config.StoreMemory:
		cartRepo = memoryrepo.NewCartRepository()
	default:
		return nil, fmt.Errorf("unknown cart store: %q", cfg.CartStore)
	}

	producer := kafka.NewProducer(kafka.DefaultProducerConfig(cfg.KafkaBrokers), log)
	healthHandler.Register("kafka", producer.Ping)

	events := event.NewProducer(producer, log)

	cat := catalog.Default()
	cartService := service.NewCartService(cartRepo, cat, events, cfg.CartTTL())
	checkoutService := service.NewCheckoutService(cartService, events, cfg.CheckoutDelay(), log)
	reservationService := service.NewReservationService(events)
	newsletterService := service.NewNewsletterService(events)

	router := httphandler.NewRouter(httphandler.RouterDeps{
		Cart:          httphandler.NewCartHandler(cartService, log),
		Checkout:      httphandler.NewCheckoutHandler(checkoutService, log),
		Menu:          httphandler.NewMenuHandler(cat),
		Reservations:  httphandler.NewReservationHandler(reservationService, log),
		Newsletter:    httphandler.NewNewsletterHandler(newsletterService, log),
		Health:        healthHandler,
		Logger:        log,
		AllowedOrigin: cfg.AllowedOrigin,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	return &App{
		cfg:      cfg,
		logger:   log,
		server:   server,
		redis:    redisClient,
		producer: producer,
		checkout: checkoutService,
	}, nil
}

// Run starts the HTTP server and blocks until it stops.
func (a *App) Run() error {
	a.logger.Info("starting ordering service",
		slog.Int("port", a.cfg.HTTPPort),
		slog.String("cart_store", a.cfg.CartStore),
	)

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and closes external connections.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down ordering service")

	var errs []error

	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}

	// Cancel pending simulated settlements before closing the producer so
	// their goroutines do not publish through a closed writer.
	a.checkout.Close()

	if err := a.producer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("kafka close: %w", err))
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}

	return errors.Join(errs...)
}

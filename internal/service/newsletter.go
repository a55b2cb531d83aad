package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/bellavista/ordering/pkg/errors"
	"github.com/bellavista/ordering/pkg/logger"
	"github.com/bellavista/ordering/pkg/validator"

	"github.com/bellavista/ordering/internal/domain"
)

// Newsletter preference topics subscribers can opt into.
var NewsletterPreferences = []string{"events", "menu", "offers"}

// NewsletterEventPublisher publishes accepted signups.
type NewsletterEventPublisher interface {
	PublishNewsletterSubscribed(ctx context.Context, sub *domain.Subscription) error
}

// SubscribeRequest is the newsletter signup payload.
type SubscribeRequest struct {
	FirstName   string   `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string   `json:"last_name" validate:"required,min=1,max=100"`
	Email       string   `json:"email" validate:"required,email"`
	Preferences []string `json:"preferences" validate:"required,min=1"`
}

// NewsletterService accepts newsletter signups and publishes them for the
// mailing pipeline.
type NewsletterService struct {
	events NewsletterEventPublisher
	now    func() time.Time
}

// NewNewsletterService creates a new newsletter service.
func NewNewsletterService(events NewsletterEventPublisher) *NewsletterService {
	return &NewsletterService{
		events: events,
		now:    time.Now,
	}
}

// Subscribe validates and accepts a newsletter signup.
func (s *NewsletterService) Subscribe(ctx context.Context, req SubscribeRequest) (*domain.Subscription, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	for _, pref := range req.Preferences {
		if !validPreference(pref) {
			return nil, apperrors.InvalidInput("unknown preference: " + pref)
		}
	}

	sub := &domain.Subscription{
		ID:           uuid.New().String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Preferences:  req.Preferences,
		SubscribedAt: s.now().UTC(),
	}

	if err := s.events.PublishNewsletterSubscribed(ctx, sub); err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "failed to publish newsletter subscribed event",
			slog.String("subscription_id", sub.ID),
			slog.String("error", err.Error()),
		)
	}

	logger.FromContext(ctx).InfoContext(ctx, "newsletter signup accepted",
		slog.String("subscription_id", sub.ID),
	)

	return sub, nil
}

func validPreference(pref string) bool {
	for _, p := range NewsletterPreferences {
		if p == pref {
			return true
		}
	}
	return false
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/bellavista/ordering/pkg/errors"
	"github.com/bellavista/ordering/pkg/logger"
	"github.com/bellavista/ordering/pkg/validator"

	"github.com/bellavista/ordering/internal/domain"
)

// TimeSlots are the bookable seatings, in order.
var TimeSlots = []string{
	"17:00", "17:30", "18:00", "18:30", "19:00",
	"19:30", "20:00", "20:30", "21:00", "21:30",
}

// ReservationEventPublisher publishes accepted reservation requests.
type ReservationEventPublisher interface {
	PublishReservationRequested(ctx context.Context, res *domain.Reservation) error
}

// ReservationRequest is the booking form payload.
type ReservationRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Phone     string `json:"phone" validate:"required,phone"`
	Date      string `json:"date" validate:"required"`
	TimeSlot  string `json:"time_slot" validate:"required"`
	PartySize int    `json:"party_size" validate:"required,gte=1,lte=12"`
	Notes     string `json:"notes" validate:"max=500"`
}

// ReservationService accepts table reservation requests. Requests are
// acknowledged with a confirmation code and published; the restaurant staff
// consumes them downstream.
type ReservationService struct {
	events ReservationEventPublisher
	now    func() time.Time
}

// NewReservationService creates a new reservation service.
func NewReservationService(events ReservationEventPublisher) *ReservationService {
	return &ReservationService{
		events: events,
		now:    time.Now,
	}
}

// Reserve validates and accepts a reservation request.
func (s *ReservationService) Reserve(ctx context.Context, req ReservationRequest) (*domain.Reservation, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.InvalidInput("date must be in YYYY-MM-DD format")
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, apperrors.InvalidInput("date must not be in the past")
	}

	if !validSlot(req.TimeSlot) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("time_slot must be one of: %s", strings.Join(TimeSlots, " ")))
	}

	res := &domain.Reservation{
		ConfirmationCode: newConfirmationCode(),
		Name:             req.Name,
		Phone:            req.Phone,
		Date:             req.Date,
		TimeSlot:         req.TimeSlot,
		PartySize:        req.PartySize,
		Notes:            req.Notes,
		CreatedAt:        s.now().UTC(),
	}

	if err := s.events.PublishReservationRequested(ctx, res); err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "failed to publish reservation requested event",
			slog.String("confirmation_code", res.ConfirmationCode),
			slog.String("error", err.Error()),
		)
	}

	logger.FromContext(ctx).InfoContext(ctx, "reservation accepted",
		slog.String("confirmation_code", res.ConfirmationCode),
		slog.String("date", res.Date),
		slog.String("time_slot", res.TimeSlot),
		slog.Int("party_size", res.PartySize),
	)

	return res, nil
}

func validSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// newConfirmationCode derives a short human-readable code from a UUID.
func newConfirmationCode() string {
	id := uuid.New().String()
	return "RSV-" + strings.ToUpper(id[:8])
}

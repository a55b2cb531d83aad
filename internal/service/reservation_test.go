package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bellavista/ordering/pkg/errors"
	"github.com/bellavista/ordering/pkg/validator"

	"github.com/bellavista/ordering/internal/domain"
)

func newTestReservationService(t *testing.T) (*ReservationService, *mockReservationPublisher) {
	t.Helper()

	events := &mockReservationPublisher{}
	events.On("PublishReservationRequested", mock.Anything, mock.Anything).Return(nil).Maybe()
	return NewReservationService(events), events
}

type mockReservationPublisher struct {
	mock.Mock
}

func (m *mockReservationPublisher) PublishReservationRequested(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func validReservation() ReservationRequest {
	return ReservationRequest{
		Name:      "Ada Lovelace",
		Phone:     "+1 555 0100",
		Date:      time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02"),
		TimeSlot:  "19:00",
		PartySize: 4,
	}
}

func TestReserve(t *testing.T) {
	svc, events := newTestReservationService(t)

	res, err := svc.Reserve(context.Background(), validReservation())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.ConfirmationCode, "RSV-"))
	assert.Len(t, res.ConfirmationCode, 12)
	assert.Equal(t, "19:00", res.TimeSlot)
	assert.Equal(t, 4, res.PartySize)

	events.AssertCalled(t, "PublishReservationRequested", mock.Anything, mock.Anything)
}

func TestReserveValidation(t *testing.T) {
	svc, _ := newTestReservationService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*ReservationRequest)
	}{
		{"missing name", func(r *ReservationRequest) { r.Name = "" }},
		{"bad phone", func(r *ReservationRequest) { r.Phone = "call-me" }},
		{"missing date", func(r *ReservationRequest) { r.Date = "" }},
		{"party too small", func(r *ReservationRequest) { r.PartySize = 0 }},
		{"party too large", func(r *ReservationRequest) { r.PartySize = 13 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validReservation()
			tt.mutate(&req)

			_, err := svc.Reserve(ctx, req)
			require.Error(t, err)

			var valErr *validator.ValidationError
			assert.ErrorAs(t, err, &valErr)
		})
	}
}

func TestReservePastDate(t *testing.T) {
	svc, _ := newTestReservationService(t)

	req := validReservation()
	req.Date = "2020-01-01"

	_, err := svc.Reserve(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestReserveBadDateFormat(t *testing.T) {
	svc, _ := newTestReservationService(t)

	req := validReservation()
	req.Date = "next friday"

	_, err := svc.Reserve(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestReserveUnknownSlot(t *testing.T) {
	svc, _ := newTestReservationService(t)

	req := validReservation()
	req.TimeSlot = "03:00"

	_, err := svc.Reserve(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestReserveTodayAccepted(t *testing.T) {
	svc, _ := newTestReservationService(t)

	req := validReservation()
	req.Date = time.Now().UTC().Format("2006-01-02")

	_, err := svc.Reserve(context.Background(), req)
	assert.NoError(t, err)
}

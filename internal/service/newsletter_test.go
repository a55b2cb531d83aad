package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bellavista/ordering/pkg/errors"
	"github.com/bellavista/ordering/pkg/validator"

	"github.com/bellavista/ordering/internal/domain"
)

type mockNewsletterPublisher struct {
	mock.Mock
}

func (m *mockNewsletterPublisher) PublishNewsletterSubscribed(ctx context.Context, sub *domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func newTestNewsletterService(t *testing.T) (*NewsletterService, *mockNewsletterPublisher) {
	t.Helper()

	events := &mockNewsletterPublisher{}
	events.On("PublishNewsletterSubscribed", mock.Anything, mock.Anything).Return(nil).Maybe()
	return NewNewsletterService(events), events
}

func validSignup() SubscribeRequest {
	return SubscribeRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Preferences: []string{"events", "offers"},
	}
}

func TestSubscribe(t *testing.T) {
	svc, events := newTestNewsletterService(t)

	sub, err := svc.Subscribe(context.Background(), validSignup())
	require.NoError(t, err)

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "ada@example.com", sub.Email)
	assert.Equal(t, []string{"events", "offers"}, sub.Preferences)

	events.AssertCalled(t, "PublishNewsletterSubscribed", mock.Anything, mock.Anything)
}

func TestSubscribeValidation(t *testing.T) {
	svc, _ := newTestNewsletterService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*SubscribeRequest)
	}{
		{"missing first name", func(r *SubscribeRequest) { r.FirstName = "" }},
		{"missing last name", func(r *SubscribeRequest) { r.LastName = "" }},
		{"bad email", func(r *SubscribeRequest) { r.Email = "not-an-email" }},
		{"no preferences", func(r *SubscribeRequest) { r.Preferences = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)

			_, err := svc.Subscribe(ctx, req)
			require.Error(t, err)

			var valErr *validator.ValidationError
			assert.ErrorAs(t, err, &valErr)
		})
	}
}

func TestSubscribeUnknownPreference(t *testing.T) {
	svc, _ := newTestNewsletterService(t)

	req := validSignup()
	req.Preferences = []string{"events", "gossip"}

	_, err := svc.Subscribe(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

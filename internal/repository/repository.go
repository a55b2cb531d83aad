package repository

import (
	"context"

	"github.com/bellavista/ordering/internal/domain"
)

// CartRepository defines the interface for cart session storage.
type CartRepository interface {
	// Get retrieves the cart for a browsing session.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Save stores the cart, overwriting any existing cart for the session.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes the cart for the session.
	Delete(ctx context.Context, sessionID string) error
}

// Package memory provides the default in-process cart store. Carts live for
// the duration of the session TTL and are lost on restart, matching the
// single-page-session lifecycle of the cart.
package memory

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/bellavista/ordering/pkg/errors"

	"github.com/bellavista/ordering/internal/domain"
)

// CartRepository implements repository.CartRepository with an in-memory map.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
	now   func() time.Time
}

// NewCartRepository creates an empty in-memory cart store.
func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[string]*domain.Cart),
		now:   time.Now,
	}
}

// Get retrieves the cart for a session. Expired carts are dropped and
// reported as not found.
func (r *CartRepository) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.RLock()
	cart, ok := r.carts[sessionID]
	r.mu.RUnlock()

	if !ok {
		return nil, apperrors.NotFound("cart", sessionID)
	}

	if !cart.ExpiresAt.IsZero() && r.now().UTC().After(cart.ExpiresAt) {
		r.mu.Lock()
		delete(r.carts, sessionID)
		r.mu.Unlock()
		return nil, apperrors.NotFound("cart", sessionID)
	}

	return copyCart(cart), nil
}

// Save stores the cart, overwriting any existing cart for the session.
func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.SessionID] = copyCart(cart)
	return nil
}

// Delete removes the cart for the session. Deleting an absent cart is not
// an error.
func (r *CartRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

// copyCart returns a deep copy so callers cannot alias stored state.
func copyCart(c *domain.Cart) *domain.Cart {
	out := *c
	out.Items = make([]domain.LineItem, len(c.Items))
	copy(out.Items, c.Items)
	for i := range out.Items {
		if len(c.Items[i].DietaryTags) > 0 {
			out.Items[i].DietaryTags = append([]string(nil), c.Items[i].DietaryTags...)
		}
	}
	return &out
}

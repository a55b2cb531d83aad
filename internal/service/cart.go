// Package service implements the ordering business logic on top of the
// repository, catalog, and event layers.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	apperrors "github.com/bellavista/ordering/pkg/errors"
	"github.com/bellavista/ordering/pkg/logger"

	"github.com/bellavista/ordering/internal/catalog"
	"github.com/bellavista/ordering/internal/domain"
	"github.com/bellavista/ordering/internal/repository"
)

// CartEventPublisher publishes cart lifecycle events.
type CartEventPublisher interface {
	PublishCartUpdated(ctx context.Context, cart *domain.Cart) error
	PublishCartCleared(ctx context.Context, sessionID string) error
}

// CartService manages per-session carts.
type CartService struct {
	repo    repository.CartRepository
	catalog *catalog.Catalog
	events  CartEventPublisher
	ttl     time.Duration
	now     func() time.Time
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, cat *catalog.Catalog, events CartEventPublisher, ttl time.Duration) *CartService {
	return &CartService{
		repo:    repo,
		catalog: cat,
		events:  events,
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetCart returns the cart for the session. A session with no stored cart
// gets an empty cart; the empty cart is not persisted until a mutation.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newCart(sessionID), nil
		}
		return nil, err
	}
	return cart, nil
}

// AddItem adds quantity units of a menu item to the cart. Lines merge by
// dish name: adding an item whose name is already in the cart bumps that
// line's quantity instead of appending a duplicate. Menu entries the cart
// cannot extract a name and price from are skipped, not surfaced.
func (s *CartService) AddItem(ctx context.Context, sessionID, itemID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item, err := s.catalog.Resolve(itemID)
	if err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "skipping unresolvable menu entry",
			slog.String("item_id", itemID),
			slog.String("reason", err.Error()),
		)
		return cart, nil
	}

	if idx := cart.FindItemIndexByName(item.Name); idx >= 0 {
		cart.Items[idx].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, item.LineItemFrom(itemID, quantity))
	}

	return s.save(ctx, cart)
}

// UpdateQuantity adjusts a line's quantity by delta. A resulting quantity of
// zero or less removes the line. Unknown item IDs are a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, delta int) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItemIndex(itemID)
	if idx < 0 {
		return cart, nil
	}

	cart.Items[idx].Quantity += delta
	if cart.Items[idx].Quantity <= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	}

	return s.save(ctx, cart)
}

// RemoveItem removes a line from the cart regardless of quantity. Unknown
// item IDs are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItemIndex(itemID)
	if idx < 0 {
		return cart, nil
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	return s.save(ctx, cart)
}

// Clear empties the cart for the session.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return err
	}

	if err := s.events.PublishCartCleared(ctx, sessionID); err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "failed to publish cart cleared event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

func (s *CartService) newCart(sessionID string) *domain.Cart {
	now := s.now().UTC()
	return &domain.Cart{
		SessionID: sessionID,
		Items:     []domain.LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
}

func (s *CartService) save(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	now := s.now().UTC()
	cart.UpdatedAt = now
	cart.ExpiresAt = now.Add(s.ttl)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	if err := s.events.PublishCartUpdated(ctx, cart); err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "failed to publish cart updated event",
			slog.String("session_id", cart.SessionID),
			slog.String("error", err.Error()),
		)
	}

	return cart, nil
}

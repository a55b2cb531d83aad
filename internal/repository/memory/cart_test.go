package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bellavista/ordering/pkg/errors"

	"github.com/bellavista/ordering/internal/domain"
)

func testCart(sessionID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		SessionID: sessionID,
		Items: []domain.LineItem{
			{ID: "bruschetta", Name: "Bruschetta", UnitPrice: 800, Quantity: 2},
		},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestSaveAndGet(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	cart := testCart("sess-1")
	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, cart.SessionID, got.SessionID)
	assert.Equal(t, cart.Items, got.Items)
}

func TestGetNotFound(t *testing.T) {
	repo := NewCartRepository()

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetReturnsCopy(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testCart("sess-1")))

	first, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	first.Items[0].Quantity = 99

	second, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Items[0].Quantity)
}

func TestGetExpiredCart(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	cart := testCart("sess-1")
	require.NoError(t, repo.Save(ctx, cart))

	repo.now = func() time.Time { return cart.ExpiresAt.Add(time.Minute) }

	_, err := repo.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Expired carts are dropped, not just hidden.
	repo.now = time.Now
	_, err = repo.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testCart("sess-1")))
	require.NoError(t, repo.Delete(ctx, "sess-1"))

	_, err := repo.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting an absent cart is a no-op.
	assert.NoError(t, repo.Delete(ctx, "missing"))
}

func TestSessionsAreIsolated(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	a := testCart("sess-a")
	b := testCart("sess-b")
	b.Items[0].Quantity = 5

	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	gotA, err := repo.Get(ctx, "sess-a")
	require.NoError(t, err)
	gotB, err := repo.Get(ctx, "sess-b")
	require.NoError(t, err)

	assert.Equal(t, 2, gotA.Items[0].Quantity)
	assert.Equal(t, 5, gotB.Items[0].Quantity)
}

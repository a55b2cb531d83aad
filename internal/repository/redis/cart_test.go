package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bellavista/ordering/pkg/errors"

	"github.com/bellavista/ordering/internal/domain"
)

func setupRepo(t *testing.T) (*CartRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCartRepository(client, time.Hour), mr
}

func testCart(sessionID string) *domain.Cart {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Cart{
		SessionID: sessionID,
		Items: []domain.LineItem{
			{ID: "tiramisu", Name: "Tiramisu", UnitPrice: 950, Quantity: 1, Popular: true},
		},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestSaveAndGet(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	cart := testCart("sess-1")
	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, cart.SessionID, got.SessionID)
	assert.Equal(t, cart.Items, got.Items)
}

func TestGetNotFound(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveSetsTTL(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testCart("sess-1")))

	ttl := mr.TTL("cart:sess-1")
	assert.Equal(t, time.Hour, ttl)
}

func TestGetAfterExpiry(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testCart("sess-1")))

	mr.FastForward(2 * time.Hour)

	_, err := repo.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testCart("sess-1")))
	require.NoError(t, repo.Delete(ctx, "sess-1"))

	_, err := repo.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.NoError(t, repo.Delete(ctx, "missing"))
}

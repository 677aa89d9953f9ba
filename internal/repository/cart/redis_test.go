package cart

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loja-storefront/internal/domain"
)

func setupTestRedis(t *testing.T) (Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedis(client, time.Hour), mr
}

func TestRedisRepo_SaveAndLoad(t *testing.T) {
	repo, _ := setupTestRedis(t)
	ctx := context.Background()

	items := []domain.CartLineItem{
		{ID: "l1", ProductID: "7", Name: "Meia", UnitPriceCents: 500, Quantity: 3},
	}
	require.NoError(t, repo.Save(ctx, "cart-1", items))

	loaded, err := repo.Load(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "7", loaded[0].ProductID)
	assert.Equal(t, 3, loaded[0].Quantity)
}

func TestRedisRepo_MissingKeyLoadsEmpty(t *testing.T) {
	repo, _ := setupTestRedis(t)
	items, err := repo.Load(context.Background(), "absent")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisRepo_CorruptValueLoadsEmpty(t *testing.T) {
	repo, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(redisKey("cart-1"), "][ not json"))

	items, err := repo.Load(context.Background(), "cart-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisRepo_ClearDeletesKey(t *testing.T) {
	repo, mr := setupTestRedis(t)
	ctx := context.Background()

	data, err := json.Marshal([]domain.CartLineItem{{ID: "l1", ProductID: "7", Quantity: 1}})
	require.NoError(t, err)
	require.NoError(t, mr.Set(redisKey("cart-1"), string(data)))

	require.NoError(t, repo.Clear(ctx, "cart-1"))
	assert.False(t, mr.Exists(redisKey("cart-1")))
}

func TestRedisRepo_SaveSetsTTL(t *testing.T) {
	repo, mr := setupTestRedis(t)
	require.NoError(t, repo.Save(context.Background(), "cart-1", nil))
	assert.Greater(t, mr.TTL(redisKey("cart-1")), time.Duration(0))
}

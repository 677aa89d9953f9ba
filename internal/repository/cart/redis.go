package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"loja-storefront/internal/domain"
)

type redisRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns a Repository keeping each cart as a JSON value under
// cart:<id> with a sliding TTL. An unparseable value loads as an empty
// cart, same policy as the file store.
func NewRedis(client *redis.Client, ttl time.Duration) Repository {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &redisRepo{client: client, ttl: ttl}
}

func (r *redisRepo) Load(ctx context.Context, cartID string) ([]domain.CartLineItem, error) {
	data, err := r.client.Get(ctx, redisKey(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get cart: %w", err)
	}
	var items []domain.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil
	}
	return items, nil
}

func (r *redisRepo) Save(ctx context.Context, cartID string, items []domain.CartLineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := r.client.Set(ctx, redisKey(cartID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

func (r *redisRepo) Clear(ctx context.Context, cartID string) error {
	if err := r.client.Del(ctx, redisKey(cartID)).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}
	return nil
}

func redisKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}

package cart

import (
	"context"
	"sync"

	"loja-storefront/internal/domain"
)

type memoryRepo struct {
	mu    sync.Mutex
	carts map[string][]domain.CartLineItem
}

// NewMemory returns an in-process Repository for tests and ephemeral
// sessions.
func NewMemory() Repository {
	return &memoryRepo{carts: make(map[string][]domain.CartLineItem)}
}

func (r *memoryRepo) Load(_ context.Context, cartID string) ([]domain.CartLineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.carts[cartID]
	items := make([]domain.CartLineItem, len(stored))
	copy(items, stored)
	return items, nil
}

func (r *memoryRepo) Save(_ context.Context, cartID string, items []domain.CartLineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]domain.CartLineItem, len(items))
	copy(stored, items)
	r.carts[cartID] = stored
	return nil
}

func (r *memoryRepo) Clear(_ context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartID)
	return nil
}

package cart

import (
	"sync"

	"loja-storefront/internal/domain"
)

// Listener receives the full cart snapshot after every mutation.
type Listener func(cartID string, items []domain.CartLineItem)

// Bus is the change channel between the cart store and any surface that
// displays cart state (item-count badge, cart page). Mutations publish
// the whole snapshot; subscribers replace their view rather than merging
// deltas, so the last write always wins.
type Bus struct {
	mu        sync.RWMutex
	listeners []Listener
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
}

func (b *Bus) publish(cartID string, items []domain.CartLineItem) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, l := range b.listeners {
		l(cartID, items)
	}
}

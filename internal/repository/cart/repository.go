package cart

import (
	"context"

	"loja-storefront/internal/domain"
)

// Repository persists cart snapshots. The cart is always written whole:
// mutations are read-modify-write over the full line list, last write
// wins. Load must treat missing or unreadable state as an empty cart.
type Repository interface {
	Load(ctx context.Context, cartID string) ([]domain.CartLineItem, error)
	Save(ctx context.Context, cartID string, items []domain.CartLineItem) error
	Clear(ctx context.Context, cartID string) error
}

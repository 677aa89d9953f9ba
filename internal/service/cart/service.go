package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"loja-storefront/internal/domain"
	"loja-storefront/internal/pricing"
	cartrepo "loja-storefront/internal/repository/cart"
)

// Service owns cart mutations. Every mutation rewrites the persisted
// snapshot synchronously and then publishes it on the bus. The unit
// price of a line is resolved once, at add time; later catalog changes
// never touch lines already in a cart.
type Service struct {
	repo  repository
	bus   *Bus
	now   func() time.Time
	newID func() string
}

type repository interface {
	Load(ctx context.Context, cartID string) ([]domain.CartLineItem, error)
	Save(ctx context.Context, cartID string, items []domain.CartLineItem) error
	Clear(ctx context.Context, cartID string) error
}

func New(repo cartrepo.Repository, bus *Bus) *Service {
	if bus == nil {
		bus = NewBus()
	}
	return &Service{
		repo:  repo,
		bus:   bus,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Bus exposes the change bus so surfaces can subscribe.
func (s *Service) Bus() *Bus {
	return s.bus
}

// Add puts quantity units of the product in the cart. A line with the
// same product and the same variation selections is merged by bumping
// its quantity; its snapshotted unit price is kept as is.
func (s *Service) Add(ctx context.Context, cartID string, product domain.Product, quantity int, selections map[string]string) ([]domain.CartLineItem, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	items, err := s.repo.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	key := domain.LineKey(product.ID, selections)
	merged := false
	for i := range items {
		if items[i].Key() == key {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, domain.CartLineItem{
			ID:             s.newID(),
			ProductID:      product.ID,
			Name:           product.Name,
			UnitPriceCents: pricing.Resolve(product, selections),
			Quantity:       quantity,
			ImageURL:       product.Thumbnail(),
			Selections:     selections,
			AddedAt:        s.now().UTC(),
		})
	}

	return s.persist(ctx, cartID, items)
}

// Increment bumps the quantity of the line with the given key.
func (s *Service) Increment(ctx context.Context, cartID, key string) ([]domain.CartLineItem, error) {
	return s.changeQuantity(ctx, cartID, key, +1)
}

// Decrement lowers the quantity of the line with the given key. A line
// already at 1 stays at 1; removal is a separate, explicit action.
func (s *Service) Decrement(ctx context.Context, cartID, key string) ([]domain.CartLineItem, error) {
	return s.changeQuantity(ctx, cartID, key, -1)
}

func (s *Service) changeQuantity(ctx context.Context, cartID, key string, delta int) ([]domain.CartLineItem, error) {
	items, err := s.repo.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Key() != key {
			continue
		}
		next := items[i].Quantity + delta
		if next < 1 {
			return items, nil
		}
		items[i].Quantity = next
		return s.persist(ctx, cartID, items)
	}
	return nil, domain.ErrNotFound
}

// Remove drops the line with the given key regardless of its quantity.
func (s *Service) Remove(ctx context.Context, cartID, key string) ([]domain.CartLineItem, error) {
	items, err := s.repo.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	found := false
	for _, item := range items {
		if item.Key() == key {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return s.persist(ctx, cartID, kept)
}

// Items returns the current cart snapshot.
func (s *Service) Items(ctx context.Context, cartID string) ([]domain.CartLineItem, error) {
	return s.repo.Load(ctx, cartID)
}

// Total sums unit price times quantity over the cart.
func (s *Service) Total(ctx context.Context, cartID string) (int64, error) {
	items, err := s.repo.Load(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return domain.CartTotal(items), nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context, cartID string) error {
	if err := s.repo.Clear(ctx, cartID); err != nil {
		return err
	}
	s.bus.publish(cartID, nil)
	return nil
}

func (s *Service) persist(ctx context.Context, cartID string, items []domain.CartLineItem) ([]domain.CartLineItem, error) {
	if err := s.repo.Save(ctx, cartID, items); err != nil {
		return nil, err
	}
	s.bus.publish(cartID, items)
	return items, nil
}

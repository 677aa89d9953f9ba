package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"loja-storefront/internal/domain"
)

type fileRepo struct {
	dir string
	mu  sync.Mutex
}

// NewFile returns a Repository writing one JSON document per cart under
// dir. Corrupt or missing documents load as an empty cart: the cart is a
// low-stakes local cache and never worth surfacing a read error for.
func NewFile(dir string) (Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cart dir: %w", err)
	}
	return &fileRepo{dir: dir}, nil
}

func (r *fileRepo) Load(_ context.Context, cartID string) ([]domain.CartLineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path(cartID))
	if err != nil {
		return nil, nil
	}
	var items []domain.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil
	}
	return items, nil
}

func (r *fileRepo) Save(_ context.Context, cartID string, items []domain.CartLineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	tmp := r.path(cartID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	if err := os.Rename(tmp, r.path(cartID)); err != nil {
		return fmt.Errorf("replace cart: %w", err)
	}
	return nil
}

func (r *fileRepo) Clear(_ context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path(cartID)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (r *fileRepo) path(cartID string) string {
	// Cart IDs are uuids we mint ourselves, but never trust them as path
	// segments.
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(cartID)
	return filepath.Join(r.dir, safe+".json")
}

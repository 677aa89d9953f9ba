package cart

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"loja-storefront/internal/domain"
)

func TestFileRepo_SaveAndLoad(t *testing.T) {
	repo, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	ctx := context.Background()

	items := []domain.CartLineItem{
		{
			ID:             "line-1",
			ProductID:      "42",
			Name:           "Body",
			UnitPriceCents: 3000,
			Quantity:       2,
			Selections:     map[string]string{"Size": "M"},
			AddedAt:        time.Now().UTC().Truncate(time.Second),
		},
	}
	if err := repo.Save(ctx, "cart-1", items); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load(ctx, "cart-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ProductID != "42" || loaded[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", loaded)
	}
	if loaded[0].Selections["Size"] != "M" {
		t.Fatalf("selections lost: %+v", loaded[0].Selections)
	}
}

func TestFileRepo_MissingCartLoadsEmpty(t *testing.T) {
	repo, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	items, err := repo.Load(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
}

func TestFileRepo_CorruptCartLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cart-1.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	items, err := repo.Load(context.Background(), "cart-1")
	if err != nil {
		t.Fatalf("expected silent recovery, got error %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
}

func TestFileRepo_ClearRemovesCart(t *testing.T) {
	repo, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	ctx := context.Background()
	if err := repo.Save(ctx, "cart-1", []domain.CartLineItem{{ID: "l1", ProductID: "1", Quantity: 1}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Clear(ctx, "cart-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	items, err := repo.Load(ctx, "cart-1")
	if err != nil || len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v err=%v", items, err)
	}
	// Clearing twice must not fail.
	if err := repo.Clear(ctx, "cart-1"); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

package cart

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"loja-storefront/internal/domain"
	"loja-storefront/internal/migrate"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE carts CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func TestPostgres_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool)
	items := []domain.CartLineItem{
		{
			ID:             "b3b2e0a6-9c1f-4f41-9a93-0f46a4f2b9a1",
			ProductID:      "42",
			Name:           "Body Manga Longa",
			UnitPriceCents: 3000,
			Quantity:       2,
			ImageURL:       "https://cdn.example.com/body.png",
			Selections:     map[string]string{"Size": "M", "Color": "Azul"},
			AddedAt:        time.Now().UTC().Truncate(time.Microsecond),
		},
		{
			ID:             "4f1a5f7e-2f7b-4d6d-8a55-7f1f6f3ce222",
			ProductID:      "7",
			Name:           "Meia",
			UnitPriceCents: 500,
			Quantity:       1,
			Selections:     map[string]string{},
			AddedAt:        time.Now().UTC().Truncate(time.Microsecond),
		},
	}

	if err := repo.Save(ctx, "cart-1", items); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load(ctx, "cart-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(loaded))
	}
	if loaded[0].ProductID != "42" || loaded[1].ProductID != "7" {
		t.Fatalf("order not preserved: %+v", loaded)
	}
	if loaded[0].Selections["Color"] != "Azul" {
		t.Fatalf("selections lost: %+v", loaded[0].Selections)
	}

	// Save replaces the snapshot, it never appends.
	if err := repo.Save(ctx, "cart-1", items[:1]); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	loaded, err = repo.Load(ctx, "cart-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected replaced snapshot of 1 line, got %d", len(loaded))
	}

	if err := repo.Clear(ctx, "cart-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	loaded, err = repo.Load(ctx, "cart-1")
	if err != nil {
		t.Fatalf("Load after clear: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty cart, got %+v", loaded)
	}
}

func TestPostgres_LoadUnknownCartIsEmpty(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	repo := NewPostgres(pool)
	items, err := repo.Load(ctx, "11111111-1111-1111-1111-111111111111")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty, got %+v", items)
	}
}

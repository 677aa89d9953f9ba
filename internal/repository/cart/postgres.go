package cart

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"loja-storefront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by the carts and cart_lines
// tables. Save replaces the full snapshot inside one transaction, which
// keeps the last-write-wins model of the other stores.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Load(ctx context.Context, cartID string) ([]domain.CartLineItem, error) {
	const q = `
SELECT id::text, product_id, name, unit_price_cents, quantity, image_url, selections, added_at
FROM cart_lines
WHERE cart_id = $1
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, q, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartLineItem
	for rows.Next() {
		var line domain.CartLineItem
		if err := rows.Scan(
			&line.ID,
			&line.ProductID,
			&line.Name,
			&line.UnitPriceCents,
			&line.Quantity,
			&line.ImageURL,
			&line.Selections,
			&line.AddedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) Save(ctx context.Context, cartID string, items []domain.CartLineItem) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO carts (id, updated_at)
VALUES ($1, now())
ON CONFLICT (id) DO UPDATE SET updated_at = now()
`, cartID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE cart_id = $1`, cartID); err != nil {
		return err
	}

	for position, line := range items {
		if _, err := tx.Exec(ctx, `
INSERT INTO cart_lines (id, cart_id, product_id, name, unit_price_cents, quantity, image_url, selections, added_at, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, line.ID, cartID, line.ProductID, line.Name, line.UnitPriceCents, line.Quantity, line.ImageURL, line.Selections, line.AddedAt, position); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) Clear(ctx context.Context, cartID string) error {
	// Clearing an absent cart is a no-op, same as the other stores.
	_, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE id = $1`, cartID)
	return err
}

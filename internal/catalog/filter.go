package catalog

import (
	"strings"

	"loja-storefront/internal/domain"
)

// Filter narrows an already-fetched product page in memory. Filtering
// happens after pagination, so matches are capped at the page boundary.
type Filter struct {
	PromoOnly     bool
	MinPriceCents int64
	MaxPriceCents int64
	Text          string
}

// Apply returns the products matching every set criterion. Price
// brackets compare against the effective display price (promo when
// active). Text matches name or description, case-insensitively.
func (f Filter) Apply(products []domain.Product) []domain.Product {
	needle := strings.ToLower(strings.TrimSpace(f.Text))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.PromoOnly && !p.IsPromo {
			continue
		}
		price := displayPrice(p)
		if f.MinPriceCents > 0 && price < f.MinPriceCents {
			continue
		}
		if f.MaxPriceCents > 0 && price > f.MaxPriceCents {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func displayPrice(p domain.Product) int64 {
	if p.IsPromo && p.PromoPriceCents != nil {
		return *p.PromoPriceCents
	}
	return p.BasePriceCents
}

package catalog

import (
	"time"

	"loja-storefront/internal/domain"
)

// ActiveBanners keeps the banners whose display window contains now.
func ActiveBanners(banners []domain.Banner, now time.Time) []domain.Banner {
	out := make([]domain.Banner, 0, len(banners))
	for _, b := range banners {
		if b.ActiveAt(now) {
			out = append(out, b)
		}
	}
	return out
}

package catalog

import (
	"testing"
	"time"

	"loja-storefront/internal/domain"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestActiveBannersWindowFilter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	banners := []domain.Banner{
		{ID: "future", IsActive: true, StartDate: timePtr(now.Add(24 * time.Hour))},
		{ID: "expired", IsActive: true, EndDate: timePtr(now.Add(-24 * time.Hour))},
		{ID: "open-ended", IsActive: true},
		{ID: "inactive"},
		{ID: "windowed", IsActive: true, StartDate: timePtr(now.Add(-time.Hour)), EndDate: timePtr(now.Add(time.Hour))},
	}

	got := ActiveBanners(banners, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 active banners, got %+v", got)
	}
	if got[0].ID != "open-ended" || got[1].ID != "windowed" {
		t.Fatalf("unexpected active set %+v", got)
	}
}

// Package catalog is the read-only browsing surface: product listings,
// categories and promotional banners, all sourced from upstream.
package catalog

import (
	"context"
	"time"

	"loja-storefront/internal/domain"
	"loja-storefront/internal/upstream"
)

type Service struct {
	client upstreamClient
	now    func() time.Time
}

type upstreamClient interface {
	ListShopItems(ctx context.Context, query upstream.ShopItemsQuery) ([]domain.Product, error)
	GetShopItem(ctx context.Context, id string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListBanners(ctx context.Context, location string) ([]domain.Banner, error)
}

func New(client *upstream.Client) *Service {
	return &Service{client: client, now: time.Now}
}

// BrowseQuery combines the server-side page selection with the
// client-side filters applied on top of it.
type BrowseQuery struct {
	Page   upstream.ShopItemsQuery
	Filter Filter
}

// Browse fetches one catalog page and filters it in memory.
func (s *Service) Browse(ctx context.Context, q BrowseQuery) ([]domain.Product, error) {
	products, err := s.client.ListShopItems(ctx, q.Page)
	if err != nil {
		return nil, err
	}
	return q.Filter.Apply(products), nil
}

func (s *Service) Product(ctx context.Context, id string) (*domain.Product, error) {
	return s.client.GetShopItem(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.client.ListCategories(ctx)
}

// Banners returns the banners currently inside their display window.
func (s *Service) Banners(ctx context.Context, location string) ([]domain.Banner, error) {
	banners, err := s.client.ListBanners(ctx, location)
	if err != nil {
		return nil, err
	}
	return ActiveBanners(banners, s.now()), nil
}

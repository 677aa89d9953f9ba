// Package upstream is the REST client for the product backend. All
// catalog data and order creation live there; this service only proxies
// and never invents prices or stock.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"loja-storefront/internal/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the backend at baseURL. Trailing slashes
// are tolerated; scheme is required.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// ShopItemsQuery narrows the shop-items listing server-side. Zero values
// are omitted from the query string.
type ShopItemsQuery struct {
	Category string
	Limit    int
	IsPromo  *bool
	Sort     string
	Order    string
}

func (q ShopItemsQuery) encode() string {
	values := url.Values{}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.IsPromo != nil {
		values.Set("isPromo", strconv.FormatBool(*q.IsPromo))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	if q.Order != "" {
		values.Set("order", q.Order)
	}
	return values.Encode()
}

func (c *Client) ListShopItems(ctx context.Context, query ShopItemsQuery) ([]domain.Product, error) {
	path := "/public/shop-items"
	if qs := query.encode(); qs != "" {
		path += "?" + qs
	}
	var raw []wireProduct
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(raw))
	for _, wp := range raw {
		products = append(products, wp.toDomain())
	}
	return products, nil
}

func (c *Client) GetShopItem(ctx context.Context, id string) (*domain.Product, error) {
	var raw wireProduct
	if err := c.get(ctx, "/public/shop-items/"+url.PathEscape(id), &raw); err != nil {
		return nil, err
	}
	product := raw.toDomain()
	return &product, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var raw []wireCategory
	if err := c.get(ctx, "/public/categories", &raw); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(raw))
	for _, wc := range raw {
		categories = append(categories, wc.toDomain())
	}
	return categories, nil
}

func (c *Client) ListBanners(ctx context.Context, location string) ([]domain.Banner, error) {
	path := "/public/banners"
	if location != "" {
		path += "?location=" + url.QueryEscape(location)
	}
	var banners []domain.Banner
	if err := c.get(ctx, path, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// OrderRequest is the order-creation payload. Items carry product and
// quantity only; upstream recomputes prices.
type OrderRequest struct {
	Items    []domain.OrderItem     `json:"items"`
	Customer domain.CustomerInfo    `json:"customerInfo"`
	Shipping domain.ShippingAddress `json:"shippingAddress"`
}

type orderCreated struct {
	URL string `json:"url"`
}

// CreateOrder submits the order and returns the payment redirect URL.
func (c *Client) CreateOrder(ctx context.Context, token string, req OrderRequest) (string, error) {
	var created orderCreated
	if err := c.do(ctx, http.MethodPost, "/shop/stripe/create-order", token, req, &created); err != nil {
		return "", err
	}
	if created.URL == "" {
		return "", fmt.Errorf("order created without redirect url")
	}
	return created.URL, nil
}

// GetOrder fetches one order for the confirmation screen.
func (c *Client) GetOrder(ctx context.Context, token, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/user/pedidos/"+url.PathEscape(id), token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call upstream: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.ErrUnauthorized
	}
	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode >= 300 {
			return fmt.Errorf("upstream error: status %d", resp.StatusCode)
		}
		return fmt.Errorf("decode upstream response: %w", err)
	}

	if resp.StatusCode >= 300 || !env.Success {
		// Upstream messages go to the user verbatim when present.
		if env.Error != "" {
			return fmt.Errorf("%s", env.Error)
		}
		return fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode upstream data: %w", err)
	}
	return nil
}

package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"loja-storefront/internal/catalog"
	"loja-storefront/internal/domain"
	cartrepo "loja-storefront/internal/repository/cart"
	cartsvc "loja-storefront/internal/service/cart"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCatalogSvc struct {
	products []domain.Product
	banners  []domain.Banner
	err      error
}

func (s *stubCatalogSvc) Browse(_ context.Context, _ catalog.BrowseQuery) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubCatalogSvc) Product(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubCatalogSvc) Categories(_ context.Context) ([]domain.Category, error) {
	return nil, s.err
}

func (s *stubCatalogSvc) Banners(_ context.Context, _ string) ([]domain.Banner, error) {
	return s.banners, s.err
}

type stubCheckoutSvc struct {
	url       string
	err       error
	order     *domain.Order
	lastToken string
}

func (s *stubCheckoutSvc) Submit(_ context.Context, token, _ string, _ domain.CheckoutForm) (string, error) {
	s.lastToken = token
	if token == "" {
		return "", domain.ErrNoToken
	}
	return s.url, s.err
}

func (s *stubCheckoutSvc) Order(_ context.Context, token, _ string) (*domain.Order, error) {
	if token == "" {
		return nil, domain.ErrNoToken
	}
	if s.order == nil {
		return nil, domain.ErrNotFound
	}
	return s.order, nil
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if deps.CatalogSvc == nil {
		deps.CatalogSvc = &stubCatalogSvc{}
	}
	if deps.CartSvc == nil {
		deps.CartSvc = cartsvc.New(cartrepo.NewMemory(), nil)
	}
	if deps.CheckoutSvc == nil {
		deps.CheckoutSvc = &stubCheckoutSvc{}
	}
	router, err := buildRouter(logDiscard(), nil, deps, "*")
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, Deps{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestListProducts(t *testing.T) {
	catalogStub := &stubCatalogSvc{products: []domain.Product{
		{ID: "42", Name: "Body", BasePriceCents: 3000},
	}}
	router := newTestRouter(t, Deps{CatalogSvc: catalogStub})

	req := httptest.NewRequest(http.MethodGet, "/store/products?category=roupas&promo=true", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"name":"Body"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestGetProductNotFound(t *testing.T) {
	router := newTestRouter(t, Deps{})
	req := httptest.NewRequest(http.MethodGet, "/store/products/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCartAddAndBadgeCount(t *testing.T) {
	catalogStub := &stubCatalogSvc{products: []domain.Product{
		{ID: "42", Name: "Body", BasePriceCents: 3000},
	}}
	router := newTestRouter(t, Deps{CatalogSvc: catalogStub})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":"42","quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: cartCookie, Value: "cart-test"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"itemCount":2`) {
		t.Fatalf("expected item count 2, body=%s", body)
	}
	if !strings.Contains(body, `"totalCents":6000`) {
		t.Fatalf("expected total 6000, body=%s", body)
	}
	if !strings.Contains(body, `"total":"R$ 60,00"`) {
		t.Fatalf("expected formatted total, body=%s", body)
	}
}

func TestCartAddMergesOnRepeat(t *testing.T) {
	catalogStub := &stubCatalogSvc{products: []domain.Product{
		{ID: "7", Name: "Meia", BasePriceCents: 500},
	}}
	router := newTestRouter(t, Deps{CatalogSvc: catalogStub})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":"7","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: cartCookie, Value: "cart-test"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("add %d: expected 201, got %d", i, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: cartCookie, Value: "cart-test"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `"quantity":2`) || strings.Count(body, `"productId"`) != 1 {
		t.Fatalf("expected one merged line with quantity 2, body=%s", body)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	router := newTestRouter(t, Deps{})
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":"404"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCartMintsCookieOnFirstContact(t *testing.T) {
	router := newTestRouter(t, Deps{})
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	found := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == cartCookie && cookie.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected cart cookie to be set")
	}
}

func TestCheckoutWithoutTokenRedirectsToLogin(t *testing.T) {
	router := newTestRouter(t, Deps{})
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"redirect":"/login"`) {
		t.Fatalf("expected login redirect, body=%s", rec.Body.String())
	}
}

func TestCheckoutSuccessReturnsRedirectURL(t *testing.T) {
	checkoutStub := &stubCheckoutSvc{url: "https://pay.example.com/s/9"}
	router := newTestRouter(t, Deps{CheckoutSvc: checkoutStub})

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"customerInfo":{},"shippingAddress":{}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if checkoutStub.lastToken != "tok123" {
		t.Fatalf("token not forwarded: %q", checkoutStub.lastToken)
	}
	if !strings.Contains(rec.Body.String(), `"url":"https://pay.example.com/s/9"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestGetOrderWithoutTokenRedirects(t *testing.T) {
	router := newTestRouter(t, Deps{})
	req := httptest.NewRequest(http.MethodGet, "/orders/o1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

package httpserver

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"loja-storefront/internal/catalog"
	"loja-storefront/internal/domain"
)

// Deps carries the services the router exposes.
type Deps struct {
	CatalogSvc  catalogService
	CartSvc     cartService
	CheckoutSvc checkoutService
}

type catalogService interface {
	Browse(ctx context.Context, q catalog.BrowseQuery) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Banners(ctx context.Context, location string) ([]domain.Banner, error)
}

type cartService interface {
	Add(ctx context.Context, cartID string, product domain.Product, quantity int, selections map[string]string) ([]domain.CartLineItem, error)
	Increment(ctx context.Context, cartID, key string) ([]domain.CartLineItem, error)
	Decrement(ctx context.Context, cartID, key string) ([]domain.CartLineItem, error)
	Remove(ctx context.Context, cartID, key string) ([]domain.CartLineItem, error)
	Items(ctx context.Context, cartID string) ([]domain.CartLineItem, error)
	Clear(ctx context.Context, cartID string) error
}

type checkoutService interface {
	Submit(ctx context.Context, token, cartID string, form domain.CheckoutForm) (string, error)
	Order(ctx context.Context, token, id string) (*domain.Order, error)
}

// buildRouter wires routes for the storefront panel API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins string) (*gin.Engine, error) {
	if deps.CatalogSvc == nil || deps.CartSvc == nil || deps.CheckoutSvc == nil {
		return nil, errors.New("missing dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(allowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	store := router.Group("/store")
	{
		store.GET("/products", listProductsHandler(deps.CatalogSvc))
		store.GET("/products/:id", getProductHandler(deps.CatalogSvc))
		store.GET("/categories", listCategoriesHandler(deps.CatalogSvc))
		store.GET("/banners", listBannersHandler(deps.CatalogSvc))
	}

	cart := router.Group("/cart")
	{
		cart.GET("", getCartHandler(deps.CartSvc))
		cart.DELETE("", clearCartHandler(deps.CartSvc))
		cart.POST("/items", addCartItemHandler(deps.CartSvc, deps.CatalogSvc))
		cart.POST("/items/:key/increment", changeQuantityHandler(deps.CartSvc, +1))
		cart.POST("/items/:key/decrement", changeQuantityHandler(deps.CartSvc, -1))
		cart.DELETE("/items/:key", removeCartItemHandler(deps.CartSvc))
	}

	router.POST("/checkout", checkoutHandler(deps.CheckoutSvc))
	router.GET("/orders/:id", getOrderHandler(deps.CheckoutSvc))

	return router, nil
}

func corsConfig(allowedOrigins string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.AllowCredentials = true
	origins := splitOrigins(allowedOrigins)
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func splitOrigins(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

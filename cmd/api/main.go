package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"loja-storefront/internal/catalog"
	"loja-storefront/internal/config"
	"loja-storefront/internal/db"
	"loja-storefront/internal/httpserver"
	cartrepo "loja-storefront/internal/repository/cart"
	cartsvc "loja-storefront/internal/service/cart"
	checkoutsvc "loja-storefront/internal/service/checkout"
	"loja-storefront/internal/upstream"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	repo, pool, err := buildCartRepository(ctx, cfg)
	if err != nil {
		logger.Fatalf("init cart store: %v", err)
	}
	if pool != nil {
		defer pool.Close()
	}

	client := upstream.NewClient(cfg.APIBaseURL)
	catalogService := catalog.New(client)
	cartService := cartsvc.New(repo, nil)
	checkoutService := checkoutsvc.New(client, cartService)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		CatalogSvc:  catalogService,
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (cart backend: %s, upstream: %s)", cfg.HTTPAddr, cfg.CartBackend, cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func buildCartRepository(ctx context.Context, cfg config.Config) (cartrepo.Repository, *pgxpool.Pool, error) {
	switch cfg.CartBackend {
	case "postgres":
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, err
		}
		return cartrepo.NewPostgres(pool), pool, nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		return cartrepo.NewRedis(client, cfg.CartTTL), nil, nil
	case "memory":
		return cartrepo.NewMemory(), nil, nil
	default:
		repo, err := cartrepo.NewFile(cfg.CartDir)
		if err != nil {
			return nil, nil, err
		}
		return repo, nil, nil
	}
}

// Command catalog lists upstream shop items from the terminal. Useful
// for checking what the panels will see without spinning the server up.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"loja-storefront/internal/catalog"
	"loja-storefront/internal/config"
	"loja-storefront/internal/money"
	"loja-storefront/internal/upstream"
)

func main() {
	category := flag.String("category", "", "category id to filter by")
	limit := flag.Int("limit", 20, "page size")
	promoOnly := flag.Bool("promo", false, "promotional items only")
	search := flag.String("q", "", "free-text filter on name/description")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stderr, "[catalog] ", log.LstdFlags|log.LUTC)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := catalog.New(upstream.NewClient(cfg.APIBaseURL))
	query := catalog.BrowseQuery{
		Page:   upstream.ShopItemsQuery{Category: *category, Limit: *limit},
		Filter: catalog.Filter{Text: *search},
	}
	if *promoOnly {
		promo := true
		query.Page.IsPromo = &promo
		query.Filter.PromoOnly = true
	}

	products, err := svc.Browse(ctx, query)
	if err != nil {
		logger.Fatalf("list products: %v", err)
	}

	for _, p := range products {
		price := p.BasePriceCents
		tag := ""
		if p.IsPromo && p.PromoPriceCents != nil {
			price = *p.PromoPriceCents
			tag = " (promo)"
		}
		fmt.Printf("%s\t%s\t%s%s\n", p.ID, p.Name, money.FormatBRL(price), tag)
	}
	logger.Printf("%d products", len(products))
}

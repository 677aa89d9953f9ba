package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"loja-storefront/internal/catalog"
	"loja-storefront/internal/domain"
	"loja-storefront/internal/upstream"
)

func listProductsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := catalog.BrowseQuery{
			Page: upstream.ShopItemsQuery{
				Category: c.Query("category"),
				Limit:    intQuery(c, "limit"),
				Sort:     c.Query("sort"),
				Order:    c.Query("order"),
			},
			Filter: catalog.Filter{
				MinPriceCents: int64(intQuery(c, "min")),
				MaxPriceCents: int64(intQuery(c, "max")),
				Text:          c.Query("q"),
			},
		}
		if promo, ok := boolQuery(c, "promo"); ok {
			// Promo narrowing is pushed upstream and re-applied locally;
			// the page boundary caveat stays either way.
			query.Page.IsPromo = &promo
			query.Filter.PromoOnly = promo
		}

		products, err := svc.Browse(c.Request.Context(), query)
		if err != nil {
			failMessage(c, http.StatusBadGateway, err.Error())
			return
		}
		okData(c, http.StatusOK, products)
	}
}

func getProductHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Product(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				failMessage(c, http.StatusNotFound, "produto não encontrado")
				return
			}
			failMessage(c, http.StatusBadGateway, err.Error())
			return
		}
		okData(c, http.StatusOK, product)
	}
}

func listCategoriesHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.Categories(c.Request.Context())
		if err != nil {
			failMessage(c, http.StatusBadGateway, err.Error())
			return
		}
		okData(c, http.StatusOK, categories)
	}
}

func listBannersHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		banners, err := svc.Banners(c.Request.Context(), c.Query("location"))
		if err != nil {
			failMessage(c, http.StatusBadGateway, err.Error())
			return
		}
		okData(c, http.StatusOK, banners)
	}
}

func intQuery(c *gin.Context, key string) int {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func boolQuery(c *gin.Context, key string) (bool, bool) {
	raw := c.Query(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

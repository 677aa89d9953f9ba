package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loja-storefront/internal/domain"
)

const cartCookie = "cart_id"

// cartID reads the cart cookie, minting one on first contact. The cart
// follows the browser, not the login: anonymous visitors keep a cart too.
func cartID(c *gin.Context) string {
	if id, err := c.Cookie(cartCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(cartCookie, id, 60*60*24*30, "/", "", false, true)
	return id
}

type addItemRequest struct {
	ProductID  string            `json:"productId" binding:"required"`
	Quantity   int               `json:"quantity"`
	Selections map[string]string `json:"selectedVariations"`
}

func getCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Items(c.Request.Context(), cartID(c))
		if err != nil {
			failMessage(c, http.StatusInternalServerError, err.Error())
			return
		}
		okData(c, http.StatusOK, toCartView(items))
	}
}

func addCartItemHandler(carts cartService, catalogSvc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			failMessage(c, http.StatusBadRequest, "productId obrigatório")
			return
		}
		if req.Quantity <= 0 {
			req.Quantity = 1
		}

		product, err := catalogSvc.Product(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				failMessage(c, http.StatusNotFound, "produto não encontrado")
				return
			}
			failMessage(c, http.StatusBadGateway, err.Error())
			return
		}

		items, err := carts.Add(c.Request.Context(), cartID(c), *product, req.Quantity, req.Selections)
		if err != nil {
			failMessage(c, http.StatusBadRequest, err.Error())
			return
		}
		okData(c, http.StatusCreated, toCartView(items))
	}
}

func changeQuantityHandler(svc cartService, delta int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []domain.CartLineItem
		var err error
		if delta > 0 {
			items, err = svc.Increment(c.Request.Context(), cartID(c), c.Param("key"))
		} else {
			items, err = svc.Decrement(c.Request.Context(), cartID(c), c.Param("key"))
		}
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				failMessage(c, http.StatusNotFound, "item não encontrado")
				return
			}
			failMessage(c, http.StatusInternalServerError, err.Error())
			return
		}
		okData(c, http.StatusOK, toCartView(items))
	}
}

func removeCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Remove(c.Request.Context(), cartID(c), c.Param("key"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				failMessage(c, http.StatusNotFound, "item não encontrado")
				return
			}
			failMessage(c, http.StatusInternalServerError, err.Error())
			return
		}
		okData(c, http.StatusOK, toCartView(items))
	}
}

func clearCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), cartID(c)); err != nil {
			failMessage(c, http.StatusInternalServerError, err.Error())
			return
		}
		okData(c, http.StatusOK, toCartView(nil))
	}
}

package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"loja-storefront/internal/domain"
	checkoutsvc "loja-storefront/internal/service/checkout"
)

const loginPath = "/login"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func checkoutHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form domain.CheckoutForm
		if err := c.ShouldBindJSON(&form); err != nil {
			failMessage(c, http.StatusBadRequest, "payload inválido")
			return
		}

		url, err := svc.Submit(c.Request.Context(), bearerToken(c), cartID(c), form)
		if err != nil {
			var verr *checkoutsvc.ValidationError
			switch {
			case errors.Is(err, domain.ErrNoToken), errors.Is(err, domain.ErrUnauthorized):
				// The panel redirects to login keeping the return path.
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "redirect": loginPath})
			case errors.As(err, &verr):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "errors": verr.Fields})
			default:
				failMessage(c, http.StatusBadGateway, err.Error())
			}
			return
		}

		okData(c, http.StatusOK, gin.H{"url": url})
	}
}

func getOrderHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Order(c.Request.Context(), bearerToken(c), c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNoToken), errors.Is(err, domain.ErrUnauthorized):
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "redirect": loginPath})
			case errors.Is(err, domain.ErrNotFound):
				failMessage(c, http.StatusNotFound, "pedido não encontrado")
			default:
				failMessage(c, http.StatusBadGateway, err.Error())
			}
			return
		}
		okData(c, http.StatusOK, order)
	}
}

package httpserver

import (
	"github.com/gin-gonic/gin"

	"loja-storefront/internal/domain"
	"loja-storefront/internal/money"
)

// The panel consumes the same {success, data} envelope the upstream
// backend uses, so the frontend keeps one response shape everywhere.
func okData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func failMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

type lineItemView struct {
	Key            string            `json:"key"`
	ProductID      string            `json:"productId"`
	Name           string            `json:"name"`
	UnitPriceCents int64             `json:"unitPriceCents"`
	UnitPrice      string            `json:"unitPrice"`
	Quantity       int               `json:"quantity"`
	TotalCents     int64             `json:"totalCents"`
	Total          string            `json:"total"`
	ImageURL       string            `json:"imageUrl,omitempty"`
	Selections     map[string]string `json:"selectedVariations,omitempty"`
}

type cartView struct {
	Items      []lineItemView `json:"items"`
	ItemCount  int            `json:"itemCount"`
	TotalCents int64          `json:"totalCents"`
	Total      string         `json:"total"`
}

func toCartView(items []domain.CartLineItem) cartView {
	views := make([]lineItemView, 0, len(items))
	count := 0
	for _, item := range items {
		views = append(views, lineItemView{
			Key:            item.Key(),
			ProductID:      item.ProductID,
			Name:           item.Name,
			UnitPriceCents: item.UnitPriceCents,
			UnitPrice:      money.FormatBRL(item.UnitPriceCents),
			Quantity:       item.Quantity,
			TotalCents:     item.TotalCents(),
			Total:          money.FormatBRL(item.TotalCents()),
			ImageURL:       item.ImageURL,
			Selections:     item.Selections,
		})
		count += item.Quantity
	}
	total := domain.CartTotal(items)
	return cartView{
		Items:      views,
		ItemCount:  count,
		TotalCents: total,
		Total:      money.FormatBRL(total),
	}
}

package domain

import (
	"sort"
	"strings"
	"time"
)

// CartLineItem is one cart entry: a product snapshot taken at add time
// plus quantity and the chosen variation selections.
type CartLineItem struct {
	ID             string            `json:"id"`
	ProductID      string            `json:"productId"`
	Name           string            `json:"name"`
	UnitPriceCents int64             `json:"unitPriceCents"`
	Quantity       int               `json:"quantity"`
	ImageURL       string            `json:"imageUrl,omitempty"`
	Selections     map[string]string `json:"selectedVariations,omitempty"`
	AddedAt        time.Time         `json:"addedAt"`
}

// Key identifies the line for merging: the product ID alone when no
// variations were selected, otherwise the product ID with the selections
// appended in a canonical order.
func (l CartLineItem) Key() string {
	return LineKey(l.ProductID, l.Selections)
}

func (l CartLineItem) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// LineKey canonicalizes a (productID, selections) pair. Selections are
// sorted by variation type so insertion order never changes the key.
func LineKey(productID string, selections map[string]string) string {
	if len(selections) == 0 {
		return productID
	}
	types := make([]string, 0, len(selections))
	for t := range selections {
		types = append(types, t)
	}
	sort.Strings(types)
	var b strings.Builder
	b.WriteString(productID)
	for _, t := range types {
		b.WriteByte('|')
		b.WriteString(t)
		b.WriteByte('=')
		b.WriteString(selections[t])
	}
	return b.String()
}

// CartTotal sums unit price times quantity over all lines.
func CartTotal(items []CartLineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.TotalCents()
	}
	return total
}

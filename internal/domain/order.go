package domain

import "time"

// OrderItem is the only thing the client sends per line at order
// creation: product and quantity. Pricing is upstream's job, which keeps
// client-side price tampering off the table.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order is the upstream order record used for the confirmation screen.
type Order struct {
	ID         string      `json:"id"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"totalCents"`
	CreatedAt  time.Time   `json:"createdAt"`
}

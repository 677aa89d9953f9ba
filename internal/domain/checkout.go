package domain

// CustomerInfo carries the buyer identification fields collected at
// checkout. Document is a CPF; no format validation beyond non-empty.
type CustomerInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
}

type ShippingAddress struct {
	Street            string `json:"street"`
	Number            string `json:"number"`
	Complement        string `json:"complement,omitempty"`
	Neighborhood      string `json:"neighborhood"`
	City              string `json:"city"`
	State             string `json:"state"`
	ZipCode           string `json:"zipCode"`
	ShippingCostCents int64  `json:"shippingCostCents"`
}

// CheckoutForm is the ephemeral per-session payload validated before an
// order is submitted upstream. Card fields are absent on purpose: payment
// happens on the hosted page behind the redirect URL.
type CheckoutForm struct {
	Customer CustomerInfo    `json:"customerInfo"`
	Shipping ShippingAddress `json:"shippingAddress"`
}

// FieldErrors maps a form field path to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool { return len(e) == 0 }

// CheckoutTotalCents is the display total: cart lines plus shipping.
// Upstream recomputes the authoritative total at order creation.
func CheckoutTotalCents(items []CartLineItem, shippingCents int64) int64 {
	return CartTotal(items) + shippingCents
}

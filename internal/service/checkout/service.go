// Package checkout validates the checkout form and hands the cart off to
// upstream order creation. Payment itself happens on the hosted page
// behind the returned redirect URL; no card data passes through here.
package checkout

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"loja-storefront/internal/domain"
	"loja-storefront/internal/upstream"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate runs the required-field checks. Only the email gets a format
// check; everything else is presence-only, upstream re-validates.
func Validate(form domain.CheckoutForm) domain.FieldErrors {
	errs := domain.FieldErrors{}

	requireField(errs, "customer.name", form.Customer.Name)
	requireField(errs, "customer.document", form.Customer.Document)
	requireField(errs, "customer.phone", form.Customer.Phone)
	if strings.TrimSpace(form.Customer.Email) == "" {
		errs["customer.email"] = "campo obrigatório"
	} else if !emailPattern.MatchString(strings.TrimSpace(form.Customer.Email)) {
		errs["customer.email"] = "email inválido"
	}

	requireField(errs, "shipping.street", form.Shipping.Street)
	requireField(errs, "shipping.number", form.Shipping.Number)
	requireField(errs, "shipping.neighborhood", form.Shipping.Neighborhood)
	requireField(errs, "shipping.city", form.Shipping.City)
	requireField(errs, "shipping.state", form.Shipping.State)
	requireField(errs, "shipping.zipCode", form.Shipping.ZipCode)

	return errs
}

func requireField(errs domain.FieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = "campo obrigatório"
	}
}

// Service submits validated carts upstream and clears them on success.
type Service struct {
	client upstreamClient
	cart   cartService
}

type upstreamClient interface {
	CreateOrder(ctx context.Context, token string, req upstream.OrderRequest) (string, error)
	GetOrder(ctx context.Context, token, id string) (*domain.Order, error)
}

type cartService interface {
	Items(ctx context.Context, cartID string) ([]domain.CartLineItem, error)
	Clear(ctx context.Context, cartID string) error
}

func New(client *upstream.Client, cart cartService) *Service {
	return &Service{client: client, cart: cart}
}

// ValidationError carries the per-field messages of a rejected form.
type ValidationError struct {
	Fields domain.FieldErrors
}

func (e *ValidationError) Error() string {
	return "invalid checkout form"
}

// Submit validates the form, builds the order payload from the cart and
// posts it upstream. The returned URL is the external payment page the
// caller must redirect to. The cart is cleared only after upstream
// accepts the order; any failure leaves it intact for a manual retry.
func (s *Service) Submit(ctx context.Context, token, cartID string, form domain.CheckoutForm) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", domain.ErrNoToken
	}
	if errs := Validate(form); !errs.Valid() {
		return "", &ValidationError{Fields: errs}
	}

	items, err := s.cart.Items(ctx, cartID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", errors.New("carrinho vazio")
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	redirectURL, err := s.client.CreateOrder(ctx, token, upstream.OrderRequest{
		Items:    orderItems,
		Customer: form.Customer,
		Shipping: form.Shipping,
	})
	if err != nil {
		return "", err
	}

	if err := s.cart.Clear(ctx, cartID); err != nil {
		// The order exists upstream; a stale local cart is the lesser
		// problem and the next write will overwrite it anyway.
		return redirectURL, nil
	}
	return redirectURL, nil
}

// Order fetches an order for the confirmation screen.
func (s *Service) Order(ctx context.Context, token, id string) (*domain.Order, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.ErrNoToken
	}
	return s.client.GetOrder(ctx, token, id)
}

package ports

import (
	"context"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
)

// CheckoutResult is returned by the simulated purchase. AlreadyProcessed is
// true when the Idempotency-Key matched a previously completed checkout.
type CheckoutResult struct {
	Total            int
	IVA              float64
	Neto             float64
	AlreadyProcessed bool
}

// CartService owns per-visitor carts. Carts live only in process memory and
// are never persisted; a restart empties them. Lines snapshot product fields
// at add time and are keyed by product id, at most one line per id.
type CartService interface {
	Items(cartID string) []domain.CartLine
	// Add merges into an existing line (quantity+1) or appends a new line
	// with quantity 1.
	Add(cartID string, product domain.Product)
	// UpdateQuantity sets the line quantity exactly; qty <= 0 removes the line.
	UpdateQuantity(cartID string, id, qty int)
	Remove(cartID string, id int)
	Clear(cartID string)
	Totals(cartID string) domain.CartTotals
	// Checkout computes the totals, clears the cart and reports the
	// breakdown. A non-empty idempotencyKey suppresses replays.
	Checkout(ctx context.Context, cartID, idempotencyKey string) (*CheckoutResult, error)
}

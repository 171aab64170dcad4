package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
	"github.com/fusionasiatica/storefront-api/internal/core/ports"
)

// DedupChecker abstracts the checkout idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// CartService keeps every visitor cart in process memory only. Nothing here
// touches the slot store: carts are session-scoped and vanish on restart,
// unlike the catalog, credential and contact state.
type CartService struct {
	dedup DedupChecker
	log   zerolog.Logger

	mu    sync.Mutex
	carts map[string][]domain.CartLine
}

func NewCartService(dedup DedupChecker, log zerolog.Logger) *CartService {
	return &CartService{
		dedup: dedup,
		log:   log,
		carts: make(map[string][]domain.CartLine),
	}
}

func (s *CartService) Items(cartID string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[cartID]
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}

// Add merges a repeat product into its existing line, otherwise appends a new
// line with quantity 1, copying name/image/price from the product at this
// instant.
func (s *CartService) Add(cartID string, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[cartID]
	for i := range lines {
		if lines[i].ID == product.ID {
			lines[i].Quantity++
			return
		}
	}
	s.carts[cartID] = append(lines, domain.CartLine{
		ID:       product.ID,
		Name:     product.Name,
		Image:    product.Image,
		Price:    product.Price,
		Quantity: 1,
	})
}

// UpdateQuantity sets the line quantity to exactly qty. A qty of zero or less
// removes the line, keeping the no-empty-lines invariant.
func (s *CartService) UpdateQuantity(cartID string, id, qty int) {
	if qty <= 0 {
		s.Remove(cartID, id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[cartID]
	for i := range lines {
		if lines[i].ID == id {
			lines[i].Quantity = qty
			return
		}
	}
}

// Remove drops the matching line; absent ids are a no-op.
func (s *CartService) Remove(cartID string, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[cartID]
	kept := lines[:0]
	for _, l := range lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.carts[cartID] = kept
}

func (s *CartService) Clear(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
}

func (s *CartService) Totals(cartID string) domain.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.TotalsOf(s.carts[cartID])
}

// Checkout is the simulated purchase: it reports the totals breakdown and
// empties the cart. A repeated Idempotency-Key returns AlreadyProcessed
// without touching the cart again.
func (s *CartService) Checkout(ctx context.Context, cartID, idempotencyKey string) (*ports.CheckoutResult, error) {
	if idempotencyKey != "" {
		isDup, err := s.dedup.IsDuplicate(ctx, idempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("cart_id", cartID).Msg("dedup check failed, processing anyway")
		} else if isDup {
			s.log.Info().Str("cart_id", cartID).Str("idempotency_key", idempotencyKey).Msg("idempotent checkout replay")
			return &ports.CheckoutResult{AlreadyProcessed: true}, nil
		}
	}

	s.mu.Lock()
	totals := domain.TotalsOf(s.carts[cartID])
	delete(s.carts, cartID)
	s.mu.Unlock()

	if idempotencyKey != "" {
		if err := s.dedup.Mark(ctx, idempotencyKey); err != nil {
			s.log.Warn().Err(err).Str("cart_id", cartID).Msg("failed to set dedup key")
		}
	}

	s.log.Info().Str("cart_id", cartID).Int("total", totals.Total).Msg("checkout completed")
	return &ports.CheckoutResult{Total: totals.Total, IVA: totals.IVA, Neto: totals.Neto}, nil
}

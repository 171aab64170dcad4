package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
)

var ramen = domain.Product{ID: 2, Name: "Ramen Tonkotsu", Price: 8000, Image: "/img/ramen.webp", Stock: 15}
var onigiri = domain.Product{ID: 16, Name: "Onigiri", Price: 4500, Image: "/img/sushi.jpeg", Stock: 24}

func newTestCart() *CartService {
	return NewCartService(newStubDedup(), zerolog.Nop())
}

func TestCartService_Add_MergesRepeatProducts(t *testing.T) {
	svc := newTestCart()

	svc.Add("visitor", ramen)
	svc.Add("visitor", ramen)
	svc.Add("visitor", ramen)

	lines := svc.Items("visitor")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}
}

func TestCartService_Add_SnapshotsProductFields(t *testing.T) {
	svc := newTestCart()

	svc.Add("visitor", ramen)

	lines := svc.Items("visitor")
	if lines[0].Name != "Ramen Tonkotsu" || lines[0].Price != 8000 || lines[0].Image != "/img/ramen.webp" {
		t.Fatalf("line did not snapshot product fields: %+v", lines[0])
	}
}

func TestCartService_UpdateQuantity_SetsExactValue(t *testing.T) {
	svc := newTestCart()

	svc.Add("visitor", ramen)
	svc.UpdateQuantity("visitor", ramen.ID, 7)

	if got := svc.Items("visitor")[0].Quantity; got != 7 {
		t.Fatalf("expected quantity 7, got %d", got)
	}
}

func TestCartService_UpdateQuantity_ZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -5} {
		svc := newTestCart()
		svc.Add("visitor", ramen)

		svc.UpdateQuantity("visitor", ramen.ID, qty)

		if got := len(svc.Items("visitor")); got != 0 {
			t.Fatalf("qty %d: expected empty cart, got %d lines", qty, got)
		}
	}
}

func TestCartService_Remove_AbsentIDIsNoOp(t *testing.T) {
	svc := newTestCart()
	svc.Add("visitor", ramen)

	svc.Remove("visitor", 999)

	if got := len(svc.Items("visitor")); got != 1 {
		t.Fatalf("expected 1 line, got %d", got)
	}
}

func TestCartService_Totals(t *testing.T) {
	svc := newTestCart()

	svc.Add("visitor", ramen)
	svc.Add("visitor", ramen)
	svc.Add("visitor", onigiri)

	totals := svc.Totals("visitor")
	if totals.Total != 20500 {
		t.Fatalf("expected total 20500, got %d", totals.Total)
	}
	if totals.IVA != 3895.0 {
		t.Fatalf("expected iva 3895.0, got %v", totals.IVA)
	}
	if totals.Neto != 16605.0 {
		t.Fatalf("expected neto 16605.0, got %v", totals.Neto)
	}
}

func TestCartService_Clear_YieldsEmptyCartAndZeroTotal(t *testing.T) {
	svc := newTestCart()

	svc.Add("visitor", ramen)
	svc.Add("visitor", onigiri)
	svc.Clear("visitor")

	if got := len(svc.Items("visitor")); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
	if total := svc.Totals("visitor").Total; total != 0 {
		t.Fatalf("expected total 0, got %d", total)
	}
}

func TestCartService_CartsAreIsolatedByID(t *testing.T) {
	svc := newTestCart()

	svc.Add("alice", ramen)
	svc.Add("bob", onigiri)

	if got := svc.Items("alice"); len(got) != 1 || got[0].ID != ramen.ID {
		t.Fatalf("unexpected alice cart: %+v", got)
	}
	if got := svc.Items("bob"); len(got) != 1 || got[0].ID != onigiri.ID {
		t.Fatalf("unexpected bob cart: %+v", got)
	}
}

func TestCartService_Checkout_ReturnsTotalsAndClearsCart(t *testing.T) {
	dedup := newStubDedup()
	svc := NewCartService(dedup, zerolog.Nop())

	svc.Add("visitor", ramen)
	svc.Add("visitor", ramen)
	svc.Add("visitor", onigiri)

	result, err := svc.Checkout(context.Background(), "visitor", "key-1")
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if result.Total != 20500 || result.IVA != 3895.0 || result.Neto != 16605.0 {
		t.Fatalf("unexpected totals: %+v", result)
	}
	if result.AlreadyProcessed {
		t.Fatalf("first checkout flagged as replay")
	}
	if got := len(svc.Items("visitor")); got != 0 {
		t.Fatalf("expected cart cleared after checkout, got %d lines", got)
	}
	if len(dedup.marked) != 1 || dedup.marked[0] != "key-1" {
		t.Fatalf("expected dedup mark for key-1, got %v", dedup.marked)
	}
}

func TestCartService_Checkout_ReplaySkipsProcessing(t *testing.T) {
	dedup := newStubDedup()
	svc := NewCartService(dedup, zerolog.Nop())

	svc.Add("visitor", ramen)
	if _, err := svc.Checkout(context.Background(), "visitor", "key-1"); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}

	svc.Add("visitor", onigiri)
	result, err := svc.Checkout(context.Background(), "visitor", "key-1")
	if err != nil {
		t.Fatalf("replay Checkout failed: %v", err)
	}
	if !result.AlreadyProcessed {
		t.Fatalf("expected replay to be flagged")
	}
	if got := len(svc.Items("visitor")); got != 1 {
		t.Fatalf("replay must not touch the cart, got %d lines", got)
	}
}

func TestCartService_Checkout_NoKeySkipsDedup(t *testing.T) {
	dedup := newStubDedup()
	svc := NewCartService(dedup, zerolog.Nop())

	svc.Add("visitor", ramen)
	if _, err := svc.Checkout(context.Background(), "visitor", ""); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if len(dedup.marked) != 0 {
		t.Fatalf("expected no dedup marks without a key, got %v", dedup.marked)
	}
}

package ports

import (
	"context"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
)

// CatalogInput carries the fields of a new product; the service assigns the id.
type CatalogInput struct {
	Name        string
	Price       int
	Image       string
	Ingredients []string
	Category    string
	Stock       int
}

// CatalogService owns the sellable item list. Every mutation persists the full
// collection before returning.
type CatalogService interface {
	// Initialize loads the persisted catalog, seeding the default item list
	// (and persisting it) when no usable snapshot exists.
	Initialize(ctx context.Context) error
	List(ctx context.Context) []domain.Product
	Get(ctx context.Context, id int) (domain.Product, error)
	Add(ctx context.Context, input CatalogInput) (domain.Product, error)
	// Remove is a silent no-op when the id is absent.
	Remove(ctx context.Context, id int) error
	// UpdateStock replaces the stock count without bounds checking.
	UpdateStock(ctx context.Context, id, stock int) error
}

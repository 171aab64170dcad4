package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
	"github.com/fusionasiatica/storefront-api/internal/core/ports"
)

// catalogSlot is the persisted shape of the catalog: the item list plus the
// monotonic id counter, so ids survive reloads and stay strictly increasing
// even after removals empty the catalog.
type catalogSlot struct {
	NextID int              `json:"next_id"`
	Items  []domain.Product `json:"items"`
}

// CatalogService holds the catalog in memory and rewrites its slot on every
// mutation. The mutex covers both the collection and the persist call so a
// concurrent mutation cannot write a stale snapshot.
type CatalogService struct {
	store ports.SlotStore
	log   zerolog.Logger

	mu     sync.Mutex
	items  []domain.Product
	nextID int
}

func NewCatalogService(store ports.SlotStore, log zerolog.Logger) *CatalogService {
	return &CatalogService{store: store, log: log}
}

// Initialize loads the persisted catalog. An absent slot, or one whose stored
// value does not decode into the expected shape, installs the seed list and
// persists it immediately.
func (s *CatalogService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var slot catalogSlot
	found, err := s.store.Load(ctx, ports.SlotCatalog, &slot)
	if err != nil {
		return err
	}
	if found && slot.NextID > 0 && slot.Items != nil {
		s.items = slot.Items
		s.nextID = slot.NextID
		return nil
	}

	s.items = domain.SeedProducts()
	s.nextID = maxProductID(s.items) + 1
	s.log.Info().Int("count", len(s.items)).Msg("catalog seeded")
	return s.persist(ctx)
}

func (s *CatalogService) List(ctx context.Context) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CatalogService) Get(ctx context.Context, id int) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.items {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// Add assigns the next counter value as the id, appends and persists.
func (s *CatalogService) Add(ctx context.Context, input ports.CatalogInput) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := domain.Product{
		ID:          s.nextID,
		Name:        input.Name,
		Price:       input.Price,
		Image:       input.Image,
		Ingredients: input.Ingredients,
		Category:    input.Category,
		Stock:       input.Stock,
	}
	s.nextID++
	s.items = append(s.items, product)

	if err := s.persist(ctx); err != nil {
		return domain.Product{}, err
	}

	s.log.Info().Int("id", product.ID).Str("name", product.Name).Msg("product added")
	return product, nil
}

// Remove filters out the matching item and persists. An absent id is a no-op.
func (s *CatalogService) Remove(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, p := range s.items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.items = kept
	return s.persist(ctx)
}

// UpdateStock replaces the stock count for the matching item and persists.
// No bounds are enforced; negative stock is stored as-is.
func (s *CatalogService) UpdateStock(ctx context.Context, id, stock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Stock = stock
			break
		}
	}
	return s.persist(ctx)
}

// persist writes the full collection. Callers must hold s.mu.
func (s *CatalogService) persist(ctx context.Context) error {
	return s.store.Save(ctx, ports.SlotCatalog, catalogSlot{NextID: s.nextID, Items: s.items})
}

func maxProductID(items []domain.Product) int {
	max := 0
	for _, p := range items {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}

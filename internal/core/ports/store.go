package ports

import "context"

// Persisted slot names. Each state service owns exactly one slot and rewrites
// it in full on every mutation.
const (
	SlotSession     = "user"
	SlotCredentials = "registeredUsers"
	SlotContact     = "contactSubmissions"
	SlotCatalog     = "productos"
)

// SlotStore reads and writes named slots of serialized state.
//
// Load decodes the stored value into out and reports whether a usable value
// was found. A missing slot or a value that does not decode into the expected
// shape degrades to (false, nil) so callers fall back to their defaults; only
// backend failures surface as errors.
type SlotStore interface {
	Load(ctx context.Context, slot string, out any) (bool, error)
	Save(ctx context.Context, slot string, value any) error
	Delete(ctx context.Context, slot string) error
}

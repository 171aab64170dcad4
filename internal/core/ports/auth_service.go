package ports

import (
	"context"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
)

// AuthService owns the registered-credential map and the current session.
// Both persist to their own slots on every change.
type AuthService interface {
	// Initialize loads the credential map and any persisted session, seeding
	// the two default accounts when no credentials are stored.
	Initialize(ctx context.Context) error
	// Login verifies the password against the stored hash. On success it
	// installs and persists the session and returns a signed token.
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	// Register creates a credential with role "user" and logs the new account
	// in immediately. An existing email fails with ErrUserExists, unchanged.
	Register(ctx context.Context, name, email, password string) (string, *domain.Session, error)
	// Logout clears the session and its persisted slot.
	Logout(ctx context.Context) error
}

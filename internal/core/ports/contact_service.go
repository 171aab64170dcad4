package ports

import (
	"context"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
)

// ContactInput carries a visitor-submitted message; id and timestamp are
// stamped by the service at insertion time.
type ContactInput struct {
	Name     string
	Email    string
	Category string
	Message  string
}

// ContactService owns the append-ordered submission log.
type ContactService interface {
	Initialize(ctx context.Context) error
	List(ctx context.Context) []domain.ContactSubmission
	Add(ctx context.Context, input ContactInput) (domain.ContactSubmission, error)
	Remove(ctx context.Context, id int64) error
}

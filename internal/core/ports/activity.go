package ports

import (
	"context"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
)

// ActivityRecorder accepts audit events for asynchronous persistence.
// Recording never blocks the mutation being audited.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// ActivityRepository persists and reads the audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	// List returns the most recent events, newest first.
	List(ctx context.Context, limit int64) ([]domain.ActivityEvent, error)
}

package ports

import (
	"context"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

// EventCache fronts event reads. Misses are not errors: implementations
// return ok=false and the caller falls through to the repository.
type EventCache interface {
	GetList(ctx context.Context) ([]*domain.Event, bool)
	SetList(ctx context.Context, events []*domain.Event)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, bool)
	SetDetails(ctx context.Context, details *domain.EventDetails)
	Invalidate(ctx context.Context, eventIDs ...string)
}

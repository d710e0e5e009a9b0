package ports

import (
	"context"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Event, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error)
	CompleteElapsed(ctx context.Context) ([]*domain.Event, error)
}

package ports

import (
	"context"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	Cancel(ctx context.Context, bookingID, pilotID string) (*domain.Booking, error)
	ListByPilot(ctx context.Context, pilotID string) ([]*domain.BookingDetails, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
}

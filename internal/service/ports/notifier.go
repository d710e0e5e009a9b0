package ports

import (
	"context"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, event *domain.Event)
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, event *domain.Event)
}

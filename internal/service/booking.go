package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/service/ports"
)

// ReservationService validates and commits pilot reservations. The capacity
// and slot-exclusivity invariants are enforced by the repository's booking
// transaction; this layer owns input validation, cache invalidation and the
// ops-channel fan-out.
type ReservationService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	notifier    ports.BookingNotifier
	cache       ports.EventCache
	logger      logger.Logger
}

func NewReservationService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	notifier ports.BookingNotifier,
	cache ports.EventCache,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		notifier:    notifier,
		cache:       cache,
		logger:      logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error) {
	if err := validateBookingInput(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		EventID:    in.EventID,
		SlotID:     in.SlotID,
		PilotID:    in.PilotID,
		PilotName:  strings.TrimSpace(in.PilotName),
		PilotEmail: strings.TrimSpace(in.PilotEmail),
		JalID:      in.JalID,
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", booking.EventID),
		logger.String("pilot_id", booking.PilotID),
	)

	s.cache.Invalidate(ctx, booking.EventID)
	go s.notify(context.WithoutCancel(ctx), booking, s.notifier.NotifyBookingCreated)

	return booking, nil
}

func (s *ReservationService) Cancel(ctx context.Context, bookingID, pilotID string) error {
	if bookingID == "" || pilotID == "" {
		return fmt.Errorf("%w: booking_id and pilot_id are required", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.Cancel(ctx, bookingID, pilotID)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", booking.EventID),
		logger.String("pilot_id", booking.PilotID),
	)

	s.cache.Invalidate(ctx, booking.EventID)
	go s.notify(context.WithoutCancel(ctx), booking, s.notifier.NotifyBookingCancelled)

	return nil
}

func (s *ReservationService) ListByPilot(ctx context.Context, pilotID string) ([]*domain.BookingDetails, error) {
	if pilotID == "" {
		return nil, fmt.Errorf("%w: pilot_id is required", domain.ErrValidation)
	}
	return s.bookingRepo.ListByPilot(ctx, pilotID)
}

func (s *ReservationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", domain.ErrValidation)
	}
	return s.bookingRepo.ListByEvent(ctx, eventID)
}

func (s *ReservationService) notify(
	ctx context.Context,
	booking *domain.Booking,
	send func(context.Context, *domain.Booking, *domain.Event),
) {
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", booking.EventID),
			logger.String("error", err.Error()),
		)
		return
	}
	send(ctx, booking, event)
}

func validateBookingInput(in domain.CreateBookingInput) error {
	switch {
	case in.EventID == "":
		return fmt.Errorf("%w: event_id is required", domain.ErrValidation)
	case in.PilotID == "":
		return fmt.Errorf("%w: pilot_id is required", domain.ErrValidation)
	case strings.TrimSpace(in.PilotName) == "":
		return fmt.Errorf("%w: pilot_name is required", domain.ErrValidation)
	case strings.TrimSpace(in.PilotEmail) == "":
		return fmt.Errorf("%w: pilot_email is required", domain.ErrValidation)
	}
	if in.SlotID != nil && *in.SlotID == "" {
		return fmt.Errorf("%w: slot_id must not be empty when present", domain.ErrValidation)
	}
	return nil
}

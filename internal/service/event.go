package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/service/ports"
)

type EventService struct {
	repo        ports.EventRepo
	slotRepo    ports.SlotRepo
	bookingRepo ports.BookingRepo
	auditRepo   ports.AuditRepo
	cache       ports.EventCache
	logger      logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	slotRepo ports.SlotRepo,
	bookingRepo ports.BookingRepo,
	auditRepo ports.AuditRepo,
	cache ports.EventCache,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:        repo,
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		auditRepo:   auditRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (s *EventService) Create(ctx context.Context, actor string, in domain.CreateEventInput) (*domain.Event, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.DepartureICAO == "" || in.ArrivalICAO == "" {
		return nil, fmt.Errorf("%w: departure and arrival airports are required", domain.ErrValidation)
	}
	if in.MaxPilots <= 0 {
		return nil, fmt.Errorf("%w: max_pilots must be positive", domain.ErrValidation)
	}
	if in.EventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		DepartureICAO:   in.DepartureICAO,
		ArrivalICAO:     in.ArrivalICAO,
		EventDate:       in.EventDate,
		Route:           in.Route,
		Airline:         in.Airline,
		FlightNumber:    in.FlightNumber,
		MaxPilots:       in.MaxPilots,
		CurrentBookings: 0,
		Status:          domain.EventStatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.cache.Invalidate(ctx, event.ID)
	recordAudit(ctx, s.auditRepo, s.logger, actor, "create", "event", event.ID, event)

	return event, nil
}

func (s *EventService) Update(ctx context.Context, actor, id string, in domain.UpdateEventInput) (*domain.Event, error) {
	if in.MaxPilots != nil && *in.MaxPilots <= 0 {
		return nil, fmt.Errorf("%w: max_pilots must be positive", domain.ErrValidation)
	}
	if in.Status != nil {
		switch *in.Status {
		case domain.EventStatusActive, domain.EventStatusInactive,
			domain.EventStatusCancelled, domain.EventStatusCompleted:
		default:
			return nil, fmt.Errorf("%w: unknown event status %q", domain.ErrValidation, *in.Status)
		}
	}

	event, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.cache.Invalidate(ctx, id)
	recordAudit(ctx, s.auditRepo, s.logger, actor, "update", "event", id, in)

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, actor, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.cache.Invalidate(ctx, id)
	recordAudit(ctx, s.auditRepo, s.logger, actor, "delete", "event", id, nil)

	return nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	if details, ok := s.cache.GetDetails(ctx, id); ok {
		return details, nil
	}

	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	slots, err := s.slotRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	details.Slots = make([]domain.Slot, len(slots))
	for i, sl := range slots {
		details.Slots[i] = *sl
	}

	bookings, err := s.bookingRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	details.Bookings = make([]domain.Booking, len(bookings))
	for i, b := range bookings {
		details.Bookings[i] = *b
	}

	s.cache.SetDetails(ctx, details)

	return details, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	if events, ok := s.cache.GetList(ctx); ok {
		return events, nil
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetList(ctx, events)

	return events, nil
}

// CompleteElapsed is driven by the scheduler and flips ACTIVE events past
// their date to COMPLETED.
func (s *EventService) CompleteElapsed(ctx context.Context) ([]*domain.Event, error) {
	completed, err := s.repo.CompleteElapsed(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}

	if len(completed) > 0 {
		ids := make([]string, len(completed))
		for i, e := range completed {
			ids[i] = e.ID
		}
		s.cache.Invalidate(ctx, ids...)

		s.logger.Info("elapsed events completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}

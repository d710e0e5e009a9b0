package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/handler/dto"
	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/middleware"
)

type EventSvc interface {
	Create(ctx context.Context, actor string, in domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, actor, id string, in domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, actor, id string) error
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type SlotSvc interface {
	Create(ctx context.Context, actor string, in domain.CreateSlotInput) (*domain.Slot, error)
	Update(ctx context.Context, actor, id string, in domain.UpdateSlotInput) (*domain.Slot, error)
	Delete(ctx context.Context, actor, id string) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Slot, error)
}

type BookingSvc interface {
	Create(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, pilotID string) error
	ListByPilot(ctx context.Context, pilotID string) ([]*domain.BookingDetails, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
}

type AuditSvc interface {
	List(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

type Authorizer interface {
	IsAdmin(key string) bool
}

type Handler struct {
	eventService   EventSvc
	slotService    SlotSvc
	bookingService BookingSvc
	auditService   AuditSvc
	authorizer     Authorizer
}

func NewHandler(
	eventService EventSvc,
	slotService SlotSvc,
	bookingService BookingSvc,
	auditService AuditSvc,
	authorizer Authorizer,
) *Handler {
	return &Handler{
		eventService:   eventService,
		slotService:    slotService,
		bookingService: bookingService,
		auditService:   auditService,
		authorizer:     authorizer,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Name:          req.Name,
		Description:   req.Description,
		DepartureICAO: req.DepartureICAO,
		ArrivalICAO:   req.ArrivalICAO,
		EventDate:     eventDate,
		Route:         req.Route,
		Airline:       req.Airline,
		FlightNumber:  req.FlightNumber,
		MaxPilots:     req.MaxPilots,
	}

	event, err := h.eventService.Create(c.Request.Context(), actor(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Name:          req.Name,
		Description:   req.Description,
		DepartureICAO: req.DepartureICAO,
		ArrivalICAO:   req.ArrivalICAO,
		Route:         req.Route,
		Airline:       req.Airline,
		FlightNumber:  req.FlightNumber,
		MaxPilots:     req.MaxPilots,
		Status:        (*domain.EventStatus)(req.Status),
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse(time.RFC3339, *req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid event_date format, expected RFC3339",
			})
			return
		}
		input.EventDate = &eventDate
	}

	event, err := h.eventService.Update(c.Request.Context(), actor(c), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), actor(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "event deleted"})
}

// Slots

func (h *Handler) CreateSlot(c *ginext.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateSlotInput{
		EventID:    req.EventID,
		SlotNumber: req.SlotNumber,
		Type:       domain.SlotType(req.Type),
		Callsign:   req.Callsign,
		Aircraft:   req.Aircraft,
	}

	slot, err := h.slotService.Create(c.Request.Context(), actor(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) UpdateSlot(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateSlotInput{
		SlotNumber: req.SlotNumber,
		Type:       (*domain.SlotType)(req.Type),
		Callsign:   req.Callsign,
		Aircraft:   req.Aircraft,
		Status:     (*domain.SlotStatus)(req.Status),
	}

	slot, err := h.slotService.Update(c.Request.Context(), actor(c), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

func (h *Handler) DeleteSlot(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	if err := h.slotService.Delete(c.Request.Context(), actor(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "slot deleted"})
}

func (h *Handler) ListEventSlots(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	slots, err := h.slotService.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		EventID:    req.EventID,
		SlotID:     req.SlotID,
		PilotID:    req.PilotID,
		PilotName:  req.PilotName,
		PilotEmail: req.PilotEmail,
		JalID:      req.JalID,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), req.BookingID, req.PilotID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "booking cancelled"})
}

// ListBookings serves both listing modes: by pilot (public) and by event
// (admin key required).
func (h *Handler) ListBookings(c *ginext.Context) {
	pilotID := c.Query("pilotId")
	eventID := c.Query("eventId")

	switch {
	case pilotID != "":
		bookings, err := h.bookingService.ListByPilot(c.Request.Context(), pilotID)
		if err != nil {
			h.handleError(c, err)
			return
		}

		resp := make([]dto.BookingDetailsResponse, 0, len(bookings))
		for _, b := range bookings {
			resp = append(resp, dto.ToBookingDetailsResponse(b))
		}
		c.JSON(http.StatusOK, ginext.H{"bookings": resp})

	case eventID != "":
		if !h.authorizer.IsAdmin(middleware.APIKey(c)) {
			h.handleError(c, domain.ErrUnauthorized)
			return
		}

		if _, err := uuid.Parse(eventID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
			return
		}

		bookings, err := h.bookingService.ListByEvent(c.Request.Context(), eventID)
		if err != nil {
			h.handleError(c, err)
			return
		}

		resp := make([]dto.BookingResponse, 0, len(bookings))
		for _, b := range bookings {
			resp = append(resp, dto.ToBookingResponse(b))
		}
		c.JSON(http.StatusOK, ginext.H{"bookings": resp})

	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "pilotId or eventId is required"})
	}
}

// Audit

func (h *Handler) ListAuditLogs(c *ginext.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	entries, err := h.auditService.List(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToAuditEntryResponse(e))
	}

	c.JSON(http.StatusOK, ginext.H{"logs": resp})
}

func actor(c *ginext.Context) string {
	return c.GetString(middleware.ActorKey)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotBookable),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrSlotMismatch),
		errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrSlotOccupied),
		errors.Is(err, domain.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "store unavailable, try again"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

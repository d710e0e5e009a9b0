package dto

import (
	"time"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

type EventResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DepartureICAO   string `json:"departure_icao"`
	ArrivalICAO     string `json:"arrival_icao"`
	EventDate       string `json:"event_date"`
	Route           string `json:"route,omitempty"`
	Airline         string `json:"airline,omitempty"`
	FlightNumber    string `json:"flight_number,omitempty"`
	MaxPilots       int    `json:"max_pilots"`
	CurrentBookings int    `json:"current_bookings"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event           EventResponse     `json:"event"`
	AvailablePilots int               `json:"available_pilots"`
	Slots           []SlotResponse    `json:"slots"`
	Bookings        []BookingResponse `json:"bookings"`
}

type SlotResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	SlotNumber int    `json:"slot_number"`
	Type       string `json:"type"`
	Callsign   string `json:"callsign,omitempty"`
	Aircraft   string `json:"aircraft,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type BookingResponse struct {
	ID         string  `json:"id"`
	EventID    string  `json:"event_id"`
	SlotID     *string `json:"slot_id,omitempty"`
	PilotID    string  `json:"pilot_id"`
	PilotName  string  `json:"pilot_name"`
	PilotEmail string  `json:"pilot_email"`
	JalID      *string `json:"jal_id,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

type BookingDetailsResponse struct {
	Booking BookingResponse `json:"booking"`
	Event   EventResponse   `json:"event"`
	Slot    *SlotResponse   `json:"slot,omitempty"`
}

type AuditEntryResponse struct {
	ID        string `json:"id"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entity_id"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:              e.ID,
		Name:            e.Name,
		Description:     e.Description,
		DepartureICAO:   e.DepartureICAO,
		ArrivalICAO:     e.ArrivalICAO,
		EventDate:       e.EventDate.Format(time.RFC3339),
		Route:           e.Route,
		Airline:         e.Airline,
		FlightNumber:    e.FlightNumber,
		MaxPilots:       e.MaxPilots,
		CurrentBookings: e.CurrentBookings,
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	slots := make([]SlotResponse, 0, len(d.Slots))
	for _, s := range d.Slots {
		slots = append(slots, ToSlotResponse(&s))
	}

	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return EventDetailsResponse{
		Event:           ToEventResponse(&d.Event),
		AvailablePilots: d.AvailablePilots,
		Slots:           slots,
		Bookings:        bookings,
	}
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:         s.ID,
		EventID:    s.EventID,
		SlotNumber: s.SlotNumber,
		Type:       string(s.Type),
		Callsign:   s.Callsign,
		Aircraft:   s.Aircraft,
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		EventID:    b.EventID,
		SlotID:     b.SlotID,
		PilotID:    b.PilotID,
		PilotName:  b.PilotName,
		PilotEmail: b.PilotEmail,
		JalID:      b.JalID,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingDetailsResponse(d *domain.BookingDetails) BookingDetailsResponse {
	resp := BookingDetailsResponse{
		Booking: ToBookingResponse(&d.Booking),
		Event:   ToEventResponse(&d.Event),
	}
	if d.Slot != nil {
		slot := ToSlotResponse(d.Slot)
		resp.Slot = &slot
	}
	return resp
}

func ToAuditEntryResponse(e *domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:        e.ID,
		Actor:     e.Actor,
		Action:    e.Action,
		Entity:    e.Entity,
		EntityID:  e.EntityID,
		Detail:    e.Detail,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

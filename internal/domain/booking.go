package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// ActiveStatuses are the booking states that hold a spot (and a slot, if one
// was reserved).
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type Booking struct {
	ID         string        `json:"id"`
	EventID    string        `json:"event_id"`
	SlotID     *string       `json:"slot_id,omitempty"`
	PilotID    string        `json:"pilot_id"`
	PilotName  string        `json:"pilot_name"`
	PilotEmail string        `json:"pilot_email"`
	JalID      *string       `json:"jal_id,omitempty"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// BookingDetails joins a booking with its event and, when the reservation is
// pinned, the slot. Used by the listing endpoints.
type BookingDetails struct {
	Booking Booking `json:"booking"`
	Event   Event   `json:"event"`
	Slot    *Slot   `json:"slot,omitempty"`
}

type CreateBookingInput struct {
	EventID    string
	SlotID     *string
	PilotID    string
	PilotName  string
	PilotEmail string
	JalID      *string
}

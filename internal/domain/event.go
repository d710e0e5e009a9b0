package domain

import "time"

type EventStatus string

const (
	EventStatusActive    EventStatus = "ACTIVE"
	EventStatusInactive  EventStatus = "INACTIVE"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusCompleted EventStatus = "COMPLETED"
)

type Event struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	DepartureICAO   string      `json:"departure_icao"`
	ArrivalICAO     string      `json:"arrival_icao"`
	EventDate       time.Time   `json:"event_date"`
	Route           string      `json:"route,omitempty"`
	Airline         string      `json:"airline,omitempty"`
	FlightNumber    string      `json:"flight_number,omitempty"`
	MaxPilots       int         `json:"max_pilots"`
	CurrentBookings int         `json:"current_bookings"`
	Status          EventStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// EventDetails carries the event together with a live available-pilots count
// derived from the bookings table, so counter drift would be visible.
type EventDetails struct {
	Event           Event     `json:"event"`
	AvailablePilots int       `json:"available_pilots"`
	Slots           []Slot    `json:"slots"`
	Bookings        []Booking `json:"bookings"`
}

type CreateEventInput struct {
	Name          string
	Description   string
	DepartureICAO string
	ArrivalICAO   string
	EventDate     time.Time
	Route         string
	Airline       string
	FlightNumber  string
	MaxPilots     int
}

type UpdateEventInput struct {
	Name          *string
	Description   *string
	DepartureICAO *string
	ArrivalICAO   *string
	EventDate     *time.Time
	Route         *string
	Airline       *string
	FlightNumber  *string
	MaxPilots     *int
	Status        *EventStatus
}

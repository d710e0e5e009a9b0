package dto

type CreateEventRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	DepartureICAO string `json:"departure_icao" binding:"required"`
	ArrivalICAO   string `json:"arrival_icao" binding:"required"`
	EventDate     string `json:"event_date" binding:"required"`
	Route         string `json:"route"`
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flight_number"`
	MaxPilots     int    `json:"max_pilots" binding:"required,gt=0"`
}

type UpdateEventRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	DepartureICAO *string `json:"departure_icao"`
	ArrivalICAO   *string `json:"arrival_icao"`
	EventDate     *string `json:"event_date"`
	Route         *string `json:"route"`
	Airline       *string `json:"airline"`
	FlightNumber  *string `json:"flight_number"`
	MaxPilots     *int    `json:"max_pilots"`
	Status        *string `json:"status"`
}

type CreateSlotRequest struct {
	EventID    string `json:"event_id" binding:"required,uuid"`
	SlotNumber int    `json:"slot_number" binding:"required,gt=0"`
	Type       string `json:"type" binding:"required,oneof=DEPARTURE ARRIVAL"`
	Callsign   string `json:"callsign"`
	Aircraft   string `json:"aircraft"`
}

type UpdateSlotRequest struct {
	SlotNumber *int    `json:"slot_number"`
	Type       *string `json:"type"`
	Callsign   *string `json:"callsign"`
	Aircraft   *string `json:"aircraft"`
	Status     *string `json:"status"`
}

type CreateBookingRequest struct {
	EventID    string  `json:"event_id" binding:"required,uuid"`
	SlotID     *string `json:"slot_id" binding:"omitempty,uuid"`
	PilotID    string  `json:"pilot_id" binding:"required"`
	PilotName  string  `json:"pilot_name" binding:"required"`
	PilotEmail string  `json:"pilot_email" binding:"required,email"`
	JalID      *string `json:"jal_id"`
}

type CancelBookingRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	PilotID   string `json:"pilot_id" binding:"required"`
}

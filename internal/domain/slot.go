package domain

import "time"

type SlotType string

const (
	SlotTypeDeparture SlotType = "DEPARTURE"
	SlotTypeArrival   SlotType = "ARRIVAL"
)

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "AVAILABLE"
	SlotStatusOccupied  SlotStatus = "OCCUPIED"
	SlotStatusReserved  SlotStatus = "RESERVED"
	SlotStatusCancelled SlotStatus = "CANCELLED"
)

type Slot struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	SlotNumber int        `json:"slot_number"`
	Type       SlotType   `json:"type"`
	Callsign   string     `json:"callsign,omitempty"`
	Aircraft   string     `json:"aircraft,omitempty"`
	Status     SlotStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CreateSlotInput struct {
	EventID    string
	SlotNumber int
	Type       SlotType
	Callsign   string
	Aircraft   string
}

type UpdateSlotInput struct {
	SlotNumber *int
	Type       *SlotType
	Callsign   *string
	Aircraft   *string
	Status     *SlotStatus
}

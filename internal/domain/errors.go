package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrEventNotBookable = errors.New("event is not open for booking")
	ErrEventFull        = errors.New("event is full")
	ErrSlotMismatch     = errors.New("slot does not belong to this event")
	ErrSlotUnavailable  = errors.New("slot is not available")
	ErrSlotOccupied     = errors.New("slot has an active booking")
	ErrAlreadyBooked    = errors.New("pilot already has a booking for this event")
)

var (
	ErrUnauthorized = errors.New("invalid or missing api key")
)

var (
	ErrValidation = errors.New("validation error")
)

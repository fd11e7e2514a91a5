package domain

import "time"

// Slot is a derived, never persisted appointment candidate
type Slot struct {
	Start         time.Time
	Label         string // HH:MM in the shop time zone
	Booked        bool
	ReservationID string // set when Booked
}

// AvailabilityStatus distinguishes a failed fetch from an empty day
type AvailabilityStatus string

const (
	AvailabilityOK    AvailabilityStatus = "ok"
	AvailabilityEmpty AvailabilityStatus = "empty"
	AvailabilityError AvailabilityStatus = "error"
)

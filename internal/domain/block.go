package domain

import "time"

// BlockItem outcome of one slot in a bulk block
type BlockItem struct {
	Slot          time.Time
	OK            bool
	Skipped       bool // not in the day's slot list, no request sent
	ReservationID string
	Error         string
}

// BlockBatch audit record of one bulk block submission
type BlockBatch struct {
	ID         string
	EmployeeID string
	Day        time.Time
	Requested  int
	Succeeded  int
	Failed     int
	Skipped    int
	Items      []BlockItem
	CreatedAt  time.Time
}

package domain

import "time"

// Reservation represents an appointment stored by the reservation API
type Reservation struct {
	ID           string
	CustomerName string
	Email        *string
	Phone        *string
	Service      string
	Date         time.Time // exact slot start
	EmployeeID   string    // empty = unassigned
	EmployeeName string    // denormalized for listing
}

// IsBlock returns true for placeholder reservations created by the bulk block
func (r *Reservation) IsBlock() bool {
	return r.CustomerName == BlockSentinel && r.Service == BlockSentinel
}

// IsUnassigned returns true if the reservation has no employee
func (r *Reservation) IsUnassigned() bool {
	return r.EmployeeID == ""
}

// NewBlockReservation builds a placeholder reservation for one slot
func NewBlockReservation(employeeID string, at time.Time) Reservation {
	return Reservation{
		CustomerName: BlockSentinel,
		Service:      BlockSentinel,
		Date:         at,
		EmployeeID:   employeeID,
	}
}

// ReservationInput fields accepted when creating or updating a reservation
// nil pointer = field is not changed (update only)
type ReservationInput struct {
	CustomerName *string
	Email        *string
	Phone        *string
	Service      *string
	Date         *time.Time
	EmployeeID   *string
}

// ReservationFilter restricts a reservation listing
type ReservationFilter struct {
	Day        *time.Time // calendar day in the shop time zone
	EmployeeID *string    // "" matches unassigned reservations
}

// Matches reports whether the reservation passes the filter
// Day comparison is done in loc
func (f ReservationFilter) Matches(r *Reservation, loc *time.Location) bool {
	if f.EmployeeID != nil && r.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.Day != nil && !SameDay(r.Date, *f.Day, loc) {
		return false
	}
	return true
}

// SameDay compares calendar days of a and b in loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay midnight of t's calendar day in loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// ParseDay parses YYYY-MM-DD as a calendar day in loc
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, loc)
}

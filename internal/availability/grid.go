package availability

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// Cell ячейка сетки: слот мастера и бронирование на нём, если есть
type Cell struct {
	domain.Slot
	Reservation *domain.Reservation
}

// Row строка сетки (один мастер или "без мастера")
type Row struct {
	EmployeeID   string
	EmployeeName string
	NameAr       string
	PhotoURL     string
	Cells        []Cell
}

// Grid двумерная проекция дня: мастера × слоты
type Grid struct {
	Day   time.Time
	Times []time.Time
	Rows  []Row
}

// BuildGrid строит сетку дня. Строка "без мастера" идёт первой, если includeUnassigned
// и в этот день есть бронирование без мастера
func BuildGrid(
	day time.Time,
	hours domain.BusinessHours,
	loc *time.Location,
	employees []domain.Employee,
	reservations []domain.Reservation,
	includeUnassigned bool,
) Grid {
	if loc == nil {
		loc = time.UTC
	}
	times := GenerateFor(day, hours, loc)
	dayReservations := ForDay(reservations, day, loc)
	idx := buildIndex(dayReservations)

	rows := make([]Row, 0, len(employees)+1)
	if includeUnassigned && hasUnassigned(dayReservations) {
		rows = append(rows, buildRow(domain.UnassignedEmployee, domain.UnassignedEmployeeName, "", "", "", times, idx))
	}
	for _, e := range employees {
		rows = append(rows, buildRow(e.ID, e.Name, e.NameAr, e.PhotoURL, e.ID, times, idx))
	}

	return Grid{Day: domain.StartOfDay(day, loc), Times: times, Rows: rows}
}

// ForDay бронирования, попадающие на календарный день в loc
func ForDay(reservations []domain.Reservation, day time.Time, loc *time.Location) []domain.Reservation {
	out := make([]domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if domain.SameDay(r.Date, day, loc) {
			out = append(out, r)
		}
	}
	return out
}

func buildRow(id, name, nameAr, photo, lookupID string, times []time.Time, idx index) Row {
	row := Row{EmployeeID: id, EmployeeName: name, NameAr: nameAr, PhotoURL: photo, Cells: make([]Cell, len(times))}
	for i, at := range times {
		cell := Cell{Slot: domain.Slot{Start: at, Label: at.Format(domain.TimeFormat)}}
		if r := idx.lookup(lookupID, at); r != nil {
			cell.Booked = true
			cell.ReservationID = r.ID
			cell.Reservation = r
		}
		row.Cells[i] = cell
	}
	return row
}

func hasUnassigned(reservations []domain.Reservation) bool {
	for i := range reservations {
		if reservations[i].IsUnassigned() {
			return true
		}
	}
	return false
}

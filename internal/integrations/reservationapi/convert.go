package reservationapi

import (
	"fmt"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// isoLayout формат дат, который ожидает API (как Date.toISOString)
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// локальные форматы без зоны, которые встречаются в данных админки
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func formatDate(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// parseDate разбирает дату API. Даты без зоны трактуются в часовом поясе салона
func parseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidResponse, s)
}

// parseOptionalDate как parseDate, но пустая строка и мусор дают нулевое время
func parseOptionalDate(s string, loc *time.Location) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := parseDate(s, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (c *Client) toDomainReservation(r Reservation) (domain.Reservation, error) {
	date, err := parseDate(r.Date, c.loc)
	if err != nil {
		return domain.Reservation{}, err
	}
	out := domain.Reservation{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Phone:        r.Phone,
		Service:      r.Service,
		Date:         date,
	}
	if r.EmployeeID != nil {
		out.EmployeeID = *r.EmployeeID
	}
	if r.Employee != nil {
		out.EmployeeName = r.Employee.Name
	}
	return out, nil
}

func fromDomainReservation(r domain.Reservation) Reservation {
	out := Reservation{
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Phone:        r.Phone,
		Service:      r.Service,
		Date:         formatDate(r.Date),
	}
	if r.EmployeeID != "" {
		id := r.EmployeeID
		out.EmployeeID = &id
	}
	return out
}

func fromReservationInput(in domain.ReservationInput) ReservationPatch {
	p := ReservationPatch{
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		Service:      in.Service,
		EmployeeID:   in.EmployeeID,
	}
	if in.Date != nil {
		d := formatDate(*in.Date)
		p.Date = &d
	}
	return p
}

func (c *Client) toDomainEmployee(e Employee) domain.Employee {
	return domain.Employee{
		ID:        e.ID,
		Name:      e.Name,
		NameAr:    e.NameAr,
		PhotoURL:  c.PhotoURL(e.ID),
		CreatedAt: parseOptionalDate(e.CreatedAt, c.loc),
		UpdatedAt: parseOptionalDate(e.UpdatedAt, c.loc),
	}
}

func (c *Client) toDomainFeedback(f Feedback) domain.Feedback {
	return domain.Feedback{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Message:   f.Message,
		Rating:    f.Rating,
		Approved:  f.Valid,
		CreatedAt: parseOptionalDate(f.CreatedAt, c.loc),
	}
}

func (c *Client) toDomainSmsLog(l SmsLog) domain.SmsLog {
	return domain.SmsLog{
		ID:        l.ID,
		To:        l.To,
		Status:    domain.SmsStatus(l.Status),
		ErrorText: l.ErrorText,
		CreatedAt: parseOptionalDate(l.CreatedAt, c.loc),
	}
}

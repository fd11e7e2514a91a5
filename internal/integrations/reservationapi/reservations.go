package reservationapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// ListReservations получает бронирования. Фильтр передаётся query-параметрами,
// но API может их игнорировать, поэтому результат дополнительно фильтруется локально
func (c *Client) ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	q := url.Values{}
	if filter.Day != nil {
		q.Set("date", filter.Day.In(c.loc).Format(domain.DateFormat))
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		q.Set("employeeId", *filter.EmployeeID)
	}
	path := "/reservations"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var raw []Reservation
	if err := c.do(ctx, request{op: "list_reservations", method: http.MethodGet, path: path}, &raw); err != nil {
		return nil, err
	}

	out := make([]domain.Reservation, 0, len(raw))
	for _, r := range raw {
		res, err := c.toDomainReservation(r)
		if err != nil {
			c.log.Warn("skip reservation %s: %v", r.ID, err)
			continue
		}
		if filter.Matches(&res, c.loc) {
			out = append(out, res)
		}
	}
	return out, nil
}

// CreateReservation создает бронирование. sess может быть nil для публичной записи
// 409 от API возвращается как ErrConflict
func (c *Client) CreateReservation(ctx context.Context, sess *Session, r domain.Reservation) (*domain.Reservation, error) {
	const op = "create_reservation"

	body, err := c.jsonBody(op, fromDomainReservation(r))
	if err != nil {
		return nil, err
	}

	var raw Reservation
	err = c.do(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        "/reservations",
		session:     sess,
		body:        body,
		contentType: "application/json",
	}, &raw)
	if err != nil {
		return nil, err
	}

	return c.createdReservation(raw, r)
}

// UpdateReservation частично обновляет бронирование
func (c *Client) UpdateReservation(ctx context.Context, sess *Session, id string, in domain.ReservationInput) (*domain.Reservation, error) {
	const op = "update_reservation"

	body, err := c.jsonBody(op, fromReservationInput(in))
	if err != nil {
		return nil, err
	}

	var raw Reservation
	err = c.do(ctx, request{
		op:          op,
		method:      http.MethodPut,
		path:        "/reservations/" + url.PathEscape(id),
		session:     sess,
		body:        body,
		contentType: "application/json",
	}, &raw)
	if err != nil {
		return nil, err
	}

	res, err := c.toDomainReservation(raw)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteReservation удаляет бронирование
func (c *Client) DeleteReservation(ctx context.Context, sess *Session, id string) error {
	return c.do(ctx, request{
		op:      "delete_reservation",
		method:  http.MethodDelete,
		path:    "/reservations/" + url.PathEscape(id),
		session: sess,
	}, nil)
}

// createdReservation собирает результат создания. Если API вернуло пустое тело,
// берём отправленные поля
func (c *Client) createdReservation(raw Reservation, sent domain.Reservation) (*domain.Reservation, error) {
	if raw.Date == "" {
		sent.ID = raw.ID
		return &sent, nil
	}
	res, err := c.toDomainReservation(raw)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

package reservationapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// ListFeedback получает отзывы с фильтром модерации
func (c *Client) ListFeedback(ctx context.Context, sess *Session, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	path := "/feedback"
	if filter != "" {
		path += "?valid=" + url.QueryEscape(string(filter))
	}

	var raw []Feedback
	if err := c.do(ctx, request{op: "list_feedback", method: http.MethodGet, path: path, session: sess}, &raw); err != nil {
		return nil, err
	}

	out := make([]domain.Feedback, 0, len(raw))
	for _, f := range raw {
		out = append(out, c.toDomainFeedback(f))
	}
	return out, nil
}

// CreateFeedback отправляет отзыв с публичной формы
func (c *Client) CreateFeedback(ctx context.Context, in domain.FeedbackInput) (*domain.Feedback, error) {
	const op = "create_feedback"

	body, err := c.jsonBody(op, FeedbackCreate{Name: in.Name, Email: in.Email, Message: in.Message, Rating: in.Rating})
	if err != nil {
		return nil, err
	}

	var raw Feedback
	err = c.do(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        "/feedback",
		body:        body,
		contentType: "application/json",
	}, &raw)
	if err != nil {
		return nil, err
	}

	f := c.toDomainFeedback(raw)
	return &f, nil
}

// ApproveFeedback одобряет отзыв. Пустой ответ API даёт nil без ошибки
func (c *Client) ApproveFeedback(ctx context.Context, sess *Session, id string) (*domain.Feedback, error) {
	var raw Feedback
	err := c.do(ctx, request{
		op:      "approve_feedback",
		method:  http.MethodPatch,
		path:    "/feedback/" + url.PathEscape(id) + "/approve",
		session: sess,
	}, &raw)
	if err != nil {
		return nil, err
	}
	if raw.ID == "" {
		return nil, nil
	}

	f := c.toDomainFeedback(raw)
	return &f, nil
}

// DeleteFeedback удаляет отзыв. 204 считается успехом
func (c *Client) DeleteFeedback(ctx context.Context, sess *Session, id string) error {
	return c.do(ctx, request{
		op:      "delete_feedback",
		method:  http.MethodDelete,
		path:    "/feedback/" + url.PathEscape(id),
		session: sess,
	}, nil)
}

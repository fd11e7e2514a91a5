package reservationapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer приёмник метрик вызовов API. *metrics.Metrics реализует этот интерфейс
type Observer interface {
	ObserveUpstream(operation, outcome string, d time.Duration)
}

// Client клиент внешнего API бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	loc        *time.Location
	log        Logger
	obs        Observer
}

// NewClient создает новый экземпляр клиента
// loc - часовой пояс салона, в нём фильтруются бронирования по дню
func NewClient(baseURL string, timeout time.Duration, loc *time.Location, log Logger) *Client {
	if loc == nil {
		loc = time.UTC
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		loc: loc,
		log: log,
	}
}

// WithObserver включает метрики вызовов
func (c *Client) WithObserver(obs Observer) *Client {
	c.obs = obs
	return c
}

// Location часовой пояс салона
func (c *Client) Location() *time.Location { return c.loc }

// PhotoURL адрес фотографии мастера
func (c *Client) PhotoURL(employeeID string) string {
	return fmt.Sprintf("%s/employees/%s/photo", c.baseURL, employeeID)
}

// request описание одного вызова API
type request struct {
	op          string
	method      string
	path        string
	session     *Session
	body        io.Reader
	contentType string
	// statusErr переопределяет маппинг не-2xx статусов
	statusErr func(status int, body string) error
}

func (c *Client) jsonBody(op string, v interface{}) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: marshal body: %v", ErrInternal, op, err)
	}
	return bytes.NewReader(data), nil
}

// do выполняет запрос и декодирует JSON-ответ в out (если out != nil и тело не пустое)
func (c *Client) do(ctx context.Context, r request, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		c.observe(r.op, err, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to create request: %v", ErrInternal, r.op, err)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")
	r.session.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// %w дважды: errors.Is(err, context.Canceled) должен срабатывать для отменённых запросов
		return fmt.Errorf("%w: %s: %w", ErrTransport, r.op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if r.statusErr != nil {
			if mapped := r.statusErr(resp.StatusCode, string(body)); mapped != nil {
				return mapped
			}
		}
		return statusError(r.op, resp.StatusCode, string(body))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: read body: %w", ErrTransport, r.op, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, r.op, err)
	}
	return nil
}

// statusError маппит HTTP статус на ошибку пакета
func statusError(op string, status int, body string) error {
	msg := errorMessage(body)
	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s: %s", ErrNotFound, op, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s: %s", ErrConflict, op, msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s: status %d", ErrUnauthorized, op, status)
	default:
		return fmt.Errorf("%w: %s: status %d: %s", ErrUnexpectedStatus, op, status, msg)
	}
}

// errorMessage достаёт message/error из JSON-тела ошибки или возвращает тело как есть
func errorMessage(body string) string {
	var er ErrorResponse
	if err := json.Unmarshal([]byte(body), &er); err == nil {
		if er.Message != "" {
			return er.Message
		}
		if er.Error != "" {
			return er.Error
		}
	}
	return strings.TrimSpace(body)
}

func (c *Client) observe(op string, err error, d time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		c.log.Warn("reservation api %s failed after %s: %v", op, d.Round(time.Millisecond), err)
	}
	if c.obs != nil {
		c.obs.ObserveUpstream(op, outcome, d)
	}
}

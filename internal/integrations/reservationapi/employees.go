package reservationapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// ListEmployees получает список мастеров (публичный эндпоинт)
func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var raw []Employee
	if err := c.do(ctx, request{op: "list_employees", method: http.MethodGet, path: "/employees"}, &raw); err != nil {
		return nil, err
	}

	out := make([]domain.Employee, 0, len(raw))
	for _, e := range raw {
		out = append(out, c.toDomainEmployee(e))
	}
	return out, nil
}

// CreateEmployee создает мастера. Фото передаётся в API как есть (multipart)
func (c *Client) CreateEmployee(ctx context.Context, sess *Session, in domain.EmployeeInput) (*domain.Employee, error) {
	return c.sendEmployee(ctx, "create_employee", http.MethodPost, "/employees", sess, in)
}

// UpdateEmployee обновляет мастера
func (c *Client) UpdateEmployee(ctx context.Context, sess *Session, id string, in domain.EmployeeInput) (*domain.Employee, error) {
	return c.sendEmployee(ctx, "update_employee", http.MethodPut, "/employees/"+url.PathEscape(id), sess, in)
}

// DeleteEmployee удаляет мастера
func (c *Client) DeleteEmployee(ctx context.Context, sess *Session, id string) error {
	return c.do(ctx, request{
		op:      "delete_employee",
		method:  http.MethodDelete,
		path:    "/employees/" + url.PathEscape(id),
		session: sess,
	}, nil)
}

func (c *Client) sendEmployee(ctx context.Context, op, method, path string, sess *Session, in domain.EmployeeInput) (*domain.Employee, error) {
	body, contentType, err := employeeForm(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: build multipart: %v", ErrInternal, op, err)
	}

	var raw Employee
	err = c.do(ctx, request{
		op:          op,
		method:      method,
		path:        path,
		session:     sess,
		body:        body,
		contentType: contentType,
	}, &raw)
	if err != nil {
		return nil, err
	}

	e := c.toDomainEmployee(raw)
	return &e, nil
}

func employeeForm(in domain.EmployeeInput) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("name", in.Name); err != nil {
		return nil, "", err
	}
	if in.NameAr != "" {
		if err := w.WriteField("nameAr", in.NameAr); err != nil {
			return nil, "", err
		}
	}
	if in.Photo != nil && len(in.Photo.Data) > 0 {
		name := in.Photo.FileName
		if name == "" {
			name = "photo"
		}
		part, err := w.CreateFormFile("photo", name)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(in.Photo.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

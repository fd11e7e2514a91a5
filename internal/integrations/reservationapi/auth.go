package reservationapi

import (
	"context"
	"fmt"
	"net/http"
)

// Login обменивает пароль администратора на bearer-токен
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	const op = "admin_login"

	body, err := c.jsonBody(op, loginRequest{Password: password})
	if err != nil {
		return "", err
	}

	var resp loginResponse
	err = c.do(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        "/admin/login",
		body:        body,
		contentType: "application/json",
		statusErr: func(status int, _ string) error {
			if status == http.StatusBadRequest {
				return fmt.Errorf("%w: %s: wrong password", ErrUnauthorized, op)
			}
			return nil
		},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: %s: empty token", ErrInvalidResponse, op)
	}
	return resp.Token, nil
}

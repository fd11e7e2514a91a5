package reservationapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// StartVerification отправляет код подтверждения на телефон или email
func (c *Client) StartVerification(ctx context.Context, channel domain.ContactChannel, contact string) error {
	path, payload, err := verificationPayload(channel, contact, "")
	if err != nil {
		return err
	}
	op := "verify_" + string(channel) + "_start"

	body, err := c.jsonBody(op, payload)
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        path + "/start",
		body:        body,
		contentType: "application/json",
	}, nil)
}

// ConfirmVerification проверяет код. Отказ API (400/401/422) возвращается как ErrInvalidCode
func (c *Client) ConfirmVerification(ctx context.Context, channel domain.ContactChannel, contact, code string) error {
	path, payload, err := verificationPayload(channel, contact, code)
	if err != nil {
		return err
	}
	op := "verify_" + string(channel) + "_confirm"

	body, err := c.jsonBody(op, payload)
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        path + "/confirm",
		body:        body,
		contentType: "application/json",
		statusErr: func(status int, body string) error {
			switch status {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusUnprocessableEntity:
				return fmt.Errorf("%w: %s", ErrInvalidCode, errorMessage(body))
			}
			return nil
		},
	}, nil)
}

func verificationPayload(channel domain.ContactChannel, contact, code string) (string, interface{}, error) {
	switch channel {
	case domain.ChannelPhone:
		return "/verify/phone", phoneVerification{Phone: contact, Code: code}, nil
	case domain.ChannelEmail:
		return "/verify/email", emailVerification{Email: contact, Code: code}, nil
	default:
		return "", nil, fmt.Errorf("%w: unknown channel %q", ErrInternal, channel)
	}
}

package reservationapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// ListSmsLogs получает журнал SMS. API отдаёт либо массив, либо {items: [...]}
func (c *Client) ListSmsLogs(ctx context.Context, sess *Session) ([]domain.SmsLog, error) {
	const op = "list_sms_logs"

	var raw json.RawMessage
	if err := c.do(ctx, request{op: op, method: http.MethodGet, path: "/sms-logs", session: sess}, &raw); err != nil {
		return nil, err
	}

	items, err := decodeSmsLogs(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidResponse, op, err)
	}

	out := make([]domain.SmsLog, 0, len(items))
	for _, l := range items {
		out = append(out, c.toDomainSmsLog(l))
	}
	return out, nil
}

func decodeSmsLogs(raw json.RawMessage) ([]SmsLog, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var list []SmsLog
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var page SmsLogPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

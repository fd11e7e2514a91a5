package sms_logs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	smslogsService "github.com/m04kA/barber-frontdesk/internal/service/smslogs"
	"github.com/m04kA/barber-frontdesk/internal/service/smslogs/models"
	"github.com/m04kA/barber-frontdesk/pkg/ptr"
)

const (
	msgInvalidInput = "status must be ok, error or exception"
	msgInvalidGroup = "grouped must be true or false"
	msgUnauthorized = "unauthorized"
)

type Handler struct {
	service SmsLogService
	logger  Logger
}

func NewHandler(service SmsLogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/sms-logs?status=&phone=&grouped=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "GET /admin/sms-logs"
	q := r.URL.Query()

	req := &models.ListSmsLogsRequest{Phone: q.Get("phone")}
	if status := q.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}
	if grouped := q.Get("grouped"); grouped != "" {
		v, err := strconv.ParseBool(grouped)
		if err != nil {
			h.logger.Warn("%s - Invalid grouped %q", op, grouped)
			handlers.RespondBadRequest(w, msgInvalidGroup)
			return
		}
		req.Grouped = v
	}

	resp, err := h.service.List(r.Context(), handlers.Session(r), req)
	if err != nil {
		switch {
		case errors.Is(err, smslogsService.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, smslogsService.ErrUnauthorized):
			h.logger.Warn("%s - Unauthorized", op)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("%s - Internal error: %v", op, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - total=%d, grouped=%t", op, resp.Total, req.Grouped)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

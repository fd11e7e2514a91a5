package day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	daySchedule "github.com/m04kA/barber-frontdesk/internal/usecase/day_schedule"
)

const (
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
	msgInvalidArgs = "invalid request"
	msgUpstream    = "reservation service unavailable"
)

type Handler struct {
	useCase DayScheduleUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase DayScheduleUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/schedule?date=YYYY-MM-DD
// Без date отдаётся сегодняшний день
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "GET /admin/schedule"

	date := time.Now().In(h.loc)
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := handlers.ParseDate(dateStr, h.loc)
		if err != nil {
			h.logger.Warn("%s - Invalid date %q", op, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	resp, err := h.useCase.Execute(r.Context(), &daySchedule.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, daySchedule.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidArgs)

		case errors.Is(err, daySchedule.ErrUpstream):
			h.logger.Error("%s - Upstream failure: %v", op, err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("%s - Internal error: %v", op, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - date=%s, rows=%d", op, date.Format("2006-01-02"), len(resp.Grid.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromGrid(resp.Grid, h.loc))
}

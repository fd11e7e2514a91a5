package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/barber-frontdesk/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "date is required"
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
	msgInvalidArgs = "invalid request"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), employeeId (optional, пусто - без мастера)
// Ошибка загрузки бронирований возвращается как 200 со status=error
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	employeeID := r.URL.Query().Get("employeeId")
	useCaseReq, err := ToUseCaseRequest(dateStr, employeeID, h.loc)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidArgs)

		default:
			h.logger.Error("GET /availability - Failed to get slots: date=%s, employee=%q, error=%v",
				dateStr, employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - date=%s, employee=%q, status=%s, slots_count=%d",
		dateStr, employeeID, result.Status, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package block_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	bulkBlock "github.com/m04kA/barber-frontdesk/internal/usecase/bulk_block"
)

const (
	msgInvalidBody = "invalid request body"
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
	msgInvalidArgs = "employeeId, date and at least one slot are required"
	msgUpstream    = "reservation service unavailable"
)

type Handler struct {
	useCase BulkBlockUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase BulkBlockUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/block-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "POST /admin/block-slots"

	var req BlockSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	useCaseReq, err := req.ToUseCaseRequest(h.loc)
	if err != nil {
		h.logger.Warn("%s - Invalid date %q", op, req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), handlers.Session(r), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bulkBlock.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidArgs)

		case errors.Is(err, bulkBlock.ErrUpstream):
			h.logger.Error("%s - Upstream failure: %v", op, err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("%s - Internal error: %v", op, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - batch=%s, employee=%s, blocked=%d, failed=%d, skipped=%d",
		op, resp.BatchID, resp.EmployeeID, resp.Blocked, resp.Failed, resp.Skipped)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp, h.loc))
}

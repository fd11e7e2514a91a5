package block_batches

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	"github.com/m04kA/barber-frontdesk/internal/service/blockhistory"
	"github.com/m04kA/barber-frontdesk/internal/service/blockhistory/models"
	"github.com/m04kA/barber-frontdesk/pkg/ptr"
)

const (
	msgInvalidDate  = "invalid date, expected YYYY-MM-DD"
	msgInvalidLimit = "invalid limit"
	msgInvalidItems = "items must be true or false"
)

type Handler struct {
	service BlockHistoryService
	loc     *time.Location
	logger  Logger
}

func NewHandler(service BlockHistoryService, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		service: service,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/block-batches?employeeId=&date=&limit=&items=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "GET /admin/block-batches"
	q := r.URL.Query()

	req := &models.ListBatchesRequest{}
	if employeeID := q.Get("employeeId"); employeeID != "" {
		req.EmployeeID = ptr.Ptr(employeeID)
	}
	if dateStr := q.Get("date"); dateStr != "" {
		day, err := handlers.ParseDate(dateStr, h.loc)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Day = ptr.Ptr(day)
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}
	if itemsStr := q.Get("items"); itemsStr != "" {
		withItems, err := strconv.ParseBool(itemsStr)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidItems)
			return
		}
		req.WithItems = withItems
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, blockhistory.ErrInvalidInput) {
			h.logger.Warn("%s - Invalid input: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - count=%d", op, len(resp))
	handlers.RespondJSON(w, http.StatusOK, resp)
}

package reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	reservationsService "github.com/m04kA/barber-frontdesk/internal/service/reservations"
	"github.com/m04kA/barber-frontdesk/internal/service/reservations/models"
	"github.com/m04kA/barber-frontdesk/pkg/ptr"
)

const (
	msgInvalidBody         = "invalid request body"
	msgInvalidDate         = "invalid date, expected YYYY-MM-DD"
	msgInvalidInput        = "invalid reservation data"
	msgReservationNotFound = "reservation not found"
	msgSlotTaken           = "employee already has a reservation at this time"
	msgUnauthorized        = "unauthorized"
)

type Handler struct {
	service ReservationService
	loc     *time.Location
	logger  Logger
}

func NewHandler(service ReservationService, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		service: service,
		loc:     loc,
		logger:  logger,
	}
}

// List GET /api/v1/admin/reservations?date=&employeeId=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "GET /admin/reservations"

	req := &models.ListReservationsRequest{}
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := handlers.ParseDate(dateStr, h.loc)
		if err != nil {
			h.logger.Warn("%s - Invalid date %q", op, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = ptr.Ptr(date)
	}
	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		req.EmployeeID = ptr.Ptr(employeeID)
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondError(w, op, "", err)
		return
	}
	h.logger.Info("%s - total=%d", op, resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Create POST /api/v1/admin/reservations
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "POST /admin/reservations"

	var req models.CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.service.Create(r.Context(), handlers.Session(r), &req)
	if err != nil {
		h.respondError(w, op, "", err)
		return
	}
	h.logger.Info("%s - Created reservation id=%s", op, resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// Update PUT /api/v1/admin/reservations/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /admin/reservations/{id}"
	id := mux.Vars(r)["id"]

	var req models.UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: id=%s, error=%v", op, id, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.service.Update(r.Context(), handlers.Session(r), id, &req)
	if err != nil {
		h.respondError(w, op, id, err)
		return
	}
	h.logger.Info("%s - Updated reservation id=%s", op, id)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Delete DELETE /api/v1/admin/reservations/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "DELETE /admin/reservations/{id}"
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), handlers.Session(r), id); err != nil {
		h.respondError(w, op, id, err)
		return
	}
	h.logger.Info("%s - Deleted reservation id=%s", op, id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, reservationsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: id=%s, error=%v", op, id, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, reservationsService.ErrReservationNotFound):
		h.logger.Warn("%s - Reservation not found: id=%s", op, id)
		handlers.RespondNotFound(w, msgReservationNotFound)

	case errors.Is(err, reservationsService.ErrSlotTaken):
		h.logger.Warn("%s - Slot taken: id=%s", op, id)
		handlers.RespondConflict(w, msgSlotTaken)

	case errors.Is(err, reservationsService.ErrUnauthorized):
		h.logger.Warn("%s - Unauthorized", op)
		handlers.RespondUnauthorized(w, msgUnauthorized)

	default:
		h.logger.Error("%s - Internal error: id=%s, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}

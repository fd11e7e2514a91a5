package booking_flow

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	"github.com/m04kA/barber-frontdesk/internal/domain"
	bookingFlow "github.com/m04kA/barber-frontdesk/internal/usecase/booking_flow"
)

const (
	msgInvalidBody     = "invalid request body"
	msgInvalidDate     = "invalid date, expected YYYY-MM-DD"
	msgInvalidSlot     = "invalid slot, expected RFC 3339 timestamp"
	msgFlowNotFound    = "booking flow not found or expired"
	msgInvalidState    = "operation not allowed in current state"
	msgSlotTaken       = "slot just taken"
	msgInvalidCode     = "invalid verification code"
	msgInvalidContact  = "contact must be an email or a German mobile number"
	msgTooManyCodes    = "too many verification codes requested, try again later"
	msgDateInPast      = "date is in the past"
	msgUnknownSlot     = "unknown slot"
	msgUnknownEmployee = "employee not found"
	msgInvalidInput    = "invalid request"
	msgUpstream        = "booking service temporarily unavailable, please retry"
)

type Handler struct {
	useCase BookingFlowUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase BookingFlowUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Start POST /api/v1/booking-flows
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	view, err := h.useCase.Start(r.Context())
	if err != nil {
		h.respondError(w, "POST /booking-flows", "", err)
		return
	}
	h.logger.Info("POST /booking-flows - Started flow %s", view.Session.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromView(view, h.loc))
}

// Get GET /api/v1/booking-flows/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	view, err := h.useCase.Get(r.Context(), id)
	h.respond(w, "GET /booking-flows/{id}", id, view, err)
}

// SelectDate POST /api/v1/booking-flows/{id}/date
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	const op = "POST /booking-flows/{id}/date"
	id := mux.Vars(r)["id"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: flow=%s, error=%v", op, id, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	date, err := handlers.ParseDate(req.Date, h.loc)
	if err != nil {
		h.logger.Warn("%s - Invalid date: flow=%s, date=%q", op, id, req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view, err := h.useCase.SelectDate(r.Context(), id, date)
	h.respond(w, op, id, view, err)
}

// SelectEmployee POST /api/v1/booking-flows/{id}/employee
func (h *Handler) SelectEmployee(w http.ResponseWriter, r *http.Request) {
	const op = "POST /booking-flows/{id}/employee"
	id := mux.Vars(r)["id"]

	var req SelectEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: flow=%s, error=%v", op, id, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	view, err := h.useCase.SelectEmployee(r.Context(), id, req.EmployeeID)
	h.respond(w, op, id, view, err)
}

// SelectSlot POST /api/v1/booking-flows/{id}/slot
func (h *Handler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	const op = "POST /booking-flows/{id}/slot"
	id := mux.Vars(r)["id"]

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: flow=%s, error=%v", op, id, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	start, err := handlers.ParseTimestamp(req.Start)
	if err != nil {
		h.logger.Warn("%s - Invalid slot: flow=%s, start=%q", op, id, req.Start)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	view, err := h.useCase.SelectSlot(r.Context(), id, start)
	h.respond(w, op, id, view, err)
}

// SendCode POST /api/v1/booking-flows/{id}/send-code
func (h *Handler) SendCode(w http.ResponseWriter, r *http.Request) {
	const op = "POST /booking-flows/{id}/send-code"
	id := mux.Vars(r)["id"]

	var req SendCodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: flow=%s, error=%v", op, id, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	view, err := h.useCase.SendCode(r.Context(), id, req.Name, req.Contact)
	h.respond(w, op, id, view, err)
}

// Verify POST /api/v1/booking-flows/{id}/verify
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	const op = "POST /booking-flows/{id}/verify"
	id := mux.Vars(r)["id"]

	var req VerifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: flow=%s, error=%v", op, id, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	view, err := h.useCase.Verify(r.Context(), id, req.Code)
	h.respond(w, op, id, view, err)
}

// Retry POST /api/v1/booking-flows/{id}/retry
func (h *Handler) Retry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	view, err := h.useCase.Retry(r.Context(), id)
	h.respond(w, "POST /booking-flows/{id}/retry", id, view, err)
}

func (h *Handler) respond(w http.ResponseWriter, op, id string, view *bookingFlow.View, err error) {
	if err != nil {
		h.respondError(w, op, id, err)
		return
	}
	h.logger.Info("%s - flow=%s, state=%s", op, id, view.Session.State)
	handlers.RespondJSON(w, http.StatusOK, FromView(view, h.loc))
}

func (h *Handler) respondError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, bookingFlow.ErrFlowNotFound):
		h.logger.Warn("%s - Flow not found: flow=%s", op, id)
		handlers.RespondNotFound(w, msgFlowNotFound)

	case errors.Is(err, bookingFlow.ErrInvalidState):
		h.logger.Warn("%s - Invalid state: flow=%s, error=%v", op, id, err)
		handlers.RespondConflict(w, msgInvalidState)

	case errors.Is(err, bookingFlow.ErrSlotTaken):
		h.logger.Info("%s - Slot taken: flow=%s", op, id)
		handlers.RespondConflict(w, msgSlotTaken)

	case errors.Is(err, bookingFlow.ErrInvalidCode):
		h.logger.Info("%s - Invalid code: flow=%s", op, id)
		handlers.RespondBadRequest(w, msgInvalidCode)

	case errors.Is(err, domain.ErrInvalidContact):
		h.logger.Warn("%s - Invalid contact: flow=%s", op, id)
		handlers.RespondBadRequest(w, msgInvalidContact)

	case errors.Is(err, domain.ErrTooManyCodes):
		h.logger.Warn("%s - Too many codes: flow=%s", op, id)
		handlers.RespondTooManyRequests(w, msgTooManyCodes)

	case errors.Is(err, domain.ErrDateInPast):
		handlers.RespondBadRequest(w, msgDateInPast)

	case errors.Is(err, domain.ErrUnknownSlot):
		handlers.RespondBadRequest(w, msgUnknownSlot)

	case errors.Is(err, domain.ErrEmployeeNotFound):
		handlers.RespondBadRequest(w, msgUnknownEmployee)

	case errors.Is(err, domain.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: flow=%s, error=%v", op, id, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, bookingFlow.ErrUpstream):
		h.logger.Error("%s - Upstream failure: flow=%s, error=%v", op, id, err)
		handlers.RespondBadGateway(w, msgUpstream)

	default:
		h.logger.Error("%s - Internal error: flow=%s, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}

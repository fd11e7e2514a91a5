package feedback

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	"github.com/m04kA/barber-frontdesk/internal/domain"
	feedbackService "github.com/m04kA/barber-frontdesk/internal/service/feedback"
	"github.com/m04kA/barber-frontdesk/internal/service/feedback/models"
)

const (
	msgInvalidBody      = "invalid request body"
	msgInvalidInput     = "name, a valid email and a message are required"
	msgInvalidFilter    = "valid must be all, true or false"
	msgRejected         = "feedback rejected"
	msgFeedbackNotFound = "feedback not found"
	msgUnauthorized     = "unauthorized"
)

type Handler struct {
	service FeedbackService
	logger  Logger
}

func NewHandler(service FeedbackService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Submit POST /api/v1/feedback
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "POST /feedback"

	var req models.SubmitFeedbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		h.respondError(w, op, "", err)
		return
	}
	h.logger.Info("%s - Feedback id=%s received", op, resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// ListPublic GET /api/v1/feedback?valid=true
// Публично отдаются только одобренные отзывы, другие значения valid игнорируются
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListPublic(r.Context())
	if err != nil {
		h.respondError(w, "GET /feedback", "", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// List GET /api/v1/admin/feedback?valid=all|true|false
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "GET /admin/feedback"

	filter := domain.FeedbackFilter(r.URL.Query().Get("valid"))
	if filter != "" && !filter.IsValid() {
		h.logger.Warn("%s - Invalid filter %q", op, filter)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	list, err := h.service.List(r.Context(), handlers.Session(r), filter)
	if err != nil {
		h.respondError(w, op, "", err)
		return
	}
	h.logger.Info("%s - filter=%q, count=%d", op, filter, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Approve PATCH /api/v1/admin/feedback/{id}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	const op = "PATCH /admin/feedback/{id}/approve"
	id := mux.Vars(r)["id"]

	resp, err := h.service.Approve(r.Context(), handlers.Session(r), id)
	if err != nil {
		h.respondError(w, op, id, err)
		return
	}
	h.logger.Info("%s - Approved id=%s", op, id)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Delete DELETE /api/v1/admin/feedback/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "DELETE /admin/feedback/{id}"
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), handlers.Session(r), id); err != nil {
		h.respondError(w, op, id, err)
		return
	}
	h.logger.Info("%s - Deleted id=%s", op, id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, feedbackService.ErrSpam):
		handlers.RespondBadRequest(w, msgRejected)

	case errors.Is(err, feedbackService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, feedbackService.ErrFeedbackNotFound):
		h.logger.Warn("%s - Feedback not found: id=%s", op, id)
		handlers.RespondNotFound(w, msgFeedbackNotFound)

	case errors.Is(err, feedbackService.ErrUnauthorized):
		h.logger.Warn("%s - Unauthorized", op)
		handlers.RespondUnauthorized(w, msgUnauthorized)

	default:
		h.logger.Error("%s - Internal error: id=%s, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}

package employees

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	employeesService "github.com/m04kA/barber-frontdesk/internal/service/employees"
)

const (
	msgInvalidForm      = "invalid multipart form"
	msgPhotoTooLarge    = "photo must be at most 5MB"
	msgInvalidInput     = "invalid employee data"
	msgEmployeeNotFound = "employee not found"
	msgUnauthorized     = "unauthorized"
)

type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/employees
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, "GET /employees", "", err)
		return
	}
	h.logger.Info("GET /employees - count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Create POST /api/v1/admin/employees (multipart)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "POST /admin/employees"

	in, err := ParseEmployeeForm(w, r)
	if err != nil {
		h.respondFormError(w, op, err)
		return
	}

	resp, err := h.service.Create(r.Context(), handlers.Session(r), in)
	if err != nil {
		h.respondError(w, op, "", err)
		return
	}
	h.logger.Info("%s - Created employee id=%s", op, resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// Update PUT /api/v1/admin/employees/{id} (multipart)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /admin/employees/{id}"
	id := mux.Vars(r)["id"]

	in, err := ParseEmployeeForm(w, r)
	if err != nil {
		h.respondFormError(w, op, err)
		return
	}

	resp, err := h.service.Update(r.Context(), handlers.Session(r), id, in)
	if err != nil {
		h.respondError(w, op, id, err)
		return
	}
	h.logger.Info("%s - Updated employee id=%s", op, id)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Delete DELETE /api/v1/admin/employees/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "DELETE /admin/employees/{id}"
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), handlers.Session(r), id); err != nil {
		h.respondError(w, op, id, err)
		return
	}
	h.logger.Info("%s - Deleted employee id=%s", op, id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondFormError(w http.ResponseWriter, op string, err error) {
	h.logger.Warn("%s - Invalid form: %v", op, err)
	if errors.Is(err, errPhotoTooLarge) {
		handlers.RespondBadRequest(w, msgPhotoTooLarge)
		return
	}
	handlers.RespondBadRequest(w, msgInvalidForm)
}

func (h *Handler) respondError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, employeesService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: id=%s, error=%v", op, id, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, employeesService.ErrEmployeeNotFound):
		h.logger.Warn("%s - Employee not found: id=%s", op, id)
		handlers.RespondNotFound(w, msgEmployeeNotFound)

	case errors.Is(err, employeesService.ErrUnauthorized):
		h.logger.Warn("%s - Unauthorized", op)
		handlers.RespondUnauthorized(w, msgUnauthorized)

	default:
		h.logger.Error("%s - Internal error: id=%s, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}

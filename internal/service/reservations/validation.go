package reservations

import (
	"fmt"
	"strings"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/service/reservations/models"
)

func validateCreate(req *models.CreateReservationRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.EmployeeID) == "" {
		return fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Email != nil && *req.Email != "" && !domain.IsValidEmail(*req.Email) {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return nil
}

func validateUpdate(id string, req *models.UpdateReservationRequest) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.CustomerName != nil && strings.TrimSpace(*req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName must not be empty", ErrInvalidInput)
	}
	if req.Email != nil && *req.Email != "" && !domain.IsValidEmail(*req.Email) {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must not be empty", ErrInvalidInput)
	}
	return nil
}

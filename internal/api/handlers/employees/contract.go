package employees

import (
	"context"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/internal/service/employees/models"
)

type EmployeeService interface {
	List(ctx context.Context) ([]models.EmployeeResponse, error)
	Create(ctx context.Context, sess *reservationapi.Session, in domain.EmployeeInput) (*models.EmployeeResponse, error)
	Update(ctx context.Context, sess *reservationapi.Session, id string, in domain.EmployeeInput) (*models.EmployeeResponse, error)
	Delete(ctx context.Context, sess *reservationapi.Session, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

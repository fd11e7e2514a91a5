package employees

import (
	"context"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
)

// EmployeeAPI интерфейс клиента API бронирований для мастеров
type EmployeeAPI interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, sess *reservationapi.Session, in domain.EmployeeInput) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, sess *reservationapi.Session, id string, in domain.EmployeeInput) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, sess *reservationapi.Session, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

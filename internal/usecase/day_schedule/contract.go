package day_schedule

import (
	"context"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// ReservationAPI вызовы API бронирований для сетки дня
type ReservationAPI interface {
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package kiosk_board

import (
	"context"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// ReservationAPI вызовы API бронирований для табло
type ReservationAPI interface {
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

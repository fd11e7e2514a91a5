package reservations

import (
	"context"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
)

// ReservationAPI интерфейс клиента API бронирований
type ReservationAPI interface {
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	CreateReservation(ctx context.Context, sess *reservationapi.Session, r domain.Reservation) (*domain.Reservation, error)
	UpdateReservation(ctx context.Context, sess *reservationapi.Session, id string, in domain.ReservationInput) (*domain.Reservation, error)
	DeleteReservation(ctx context.Context, sess *reservationapi.Session, id string) error
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

package booking_flow

import (
	"context"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
)

// FlowRepository хранилище сессий записи
type FlowRepository interface {
	Save(ctx context.Context, s *domain.FlowSession) error
	Get(ctx context.Context, id string) (*domain.FlowSession, error)
}

// ReservationAPI вызовы API бронирований, нужные сценарию
type ReservationAPI interface {
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	CreateReservation(ctx context.Context, sess *reservationapi.Session, r domain.Reservation) (*domain.Reservation, error)
	StartVerification(ctx context.Context, channel domain.ContactChannel, contact string) error
	ConfirmVerification(ctx context.Context, channel domain.ContactChannel, contact, code string) error
}

// CodeLimiter ограничение частоты отправки кодов на один контакт
type CodeLimiter interface {
	Allow(key string) bool
}

// Observer метрики завершённых сценариев
type Observer interface {
	IncBookingFlow(result string)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

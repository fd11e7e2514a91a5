package bulk_block

import (
	"context"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
)

// ReservationAPI вызовы API бронирований для блокировки
type ReservationAPI interface {
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	CreateReservation(ctx context.Context, sess *reservationapi.Session, r domain.Reservation) (*domain.Reservation, error)
}

// AuditRepository журнал блокировок
type AuditRepository interface {
	CreateBatch(ctx context.Context, b *domain.BlockBatch) error
	AddItems(ctx context.Context, batchID string, items []domain.BlockItem) error
}

// TxManager интерфейс для управления транзакциями
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Observer метрики блокировок
type Observer interface {
	AddBlockedSlots(outcome string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

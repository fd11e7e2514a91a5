package smslogs

import (
	"context"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
)

// SmsLogAPI интерфейс клиента API бронирований для журнала SMS
type SmsLogAPI interface {
	ListSmsLogs(ctx context.Context, sess *reservationapi.Session) ([]domain.SmsLog, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

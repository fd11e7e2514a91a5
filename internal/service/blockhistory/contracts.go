package blockhistory

import (
	"context"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/infra/storage/blockaudit"
)

// AuditReader чтение журнала блокировок
type AuditReader interface {
	List(ctx context.Context, filter blockaudit.Filter) ([]domain.BlockBatch, error)
	GetItems(ctx context.Context, batchID string) ([]domain.BlockItem, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

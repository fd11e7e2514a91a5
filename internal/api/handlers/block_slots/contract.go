package block_slots

import (
	"context"

	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	bulkBlock "github.com/m04kA/barber-frontdesk/internal/usecase/bulk_block"
)

type BulkBlockUseCase interface {
	Execute(ctx context.Context, sess *reservationapi.Session, req *bulkBlock.Request) (*bulkBlock.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

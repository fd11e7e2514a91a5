package block_batches

import (
	"context"

	"github.com/m04kA/barber-frontdesk/internal/service/blockhistory/models"
)

type BlockHistoryService interface {
	List(ctx context.Context, req *models.ListBatchesRequest) ([]models.BatchResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

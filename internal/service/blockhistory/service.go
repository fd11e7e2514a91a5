package blockhistory

import (
	"context"
	"fmt"

	"github.com/m04kA/barber-frontdesk/internal/infra/storage/blockaudit"
	"github.com/m04kA/barber-frontdesk/internal/service/blockhistory/models"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Service просмотр журнала массовых блокировок
type Service struct {
	audit  AuditReader
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(audit AuditReader, logger Logger) *Service {
	return &Service{audit: audit, logger: logger}
}

// List пачки блокировок, новые первыми. С WithItems подгружаются исходы по слотам
func (s *Service) List(ctx context.Context, req *models.ListBatchesRequest) ([]models.BatchResponse, error) {
	if req == nil {
		req = &models.ListBatchesRequest{}
	}
	limit := req.Limit
	switch {
	case limit == 0:
		limit = defaultLimit
	case limit > maxLimit:
		return nil, fmt.Errorf("%w: limit must be at most %d", ErrInvalidInput, maxLimit)
	}

	batches, err := s.audit.List(ctx, blockaudit.Filter{
		EmployeeID: req.EmployeeID,
		Day:        req.Day,
		Limit:      limit,
	})
	if err != nil {
		s.logger.Error("List: failed to list block batches: %v", err)
		return nil, fmt.Errorf("%w: List - audit repository: %v", ErrInternal, err)
	}

	resp := make([]models.BatchResponse, 0, len(batches))
	for i := range batches {
		if req.WithItems {
			items, err := s.audit.GetItems(ctx, batches[i].ID)
			if err != nil {
				s.logger.Error("List: failed to load items of batch=%s: %v", batches[i].ID, err)
				return nil, fmt.Errorf("%w: List - audit items: %v", ErrInternal, err)
			}
			batches[i].Items = items
		}
		resp = append(resp, models.FromDomainBatch(&batches[i]))
	}
	return resp, nil
}

package models

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// ListBatchesRequest фильтр журнала
type ListBatchesRequest struct {
	EmployeeID *string
	Day        *time.Time
	Limit      uint64
	WithItems  bool
}

type BatchItemResponse struct {
	Slot          time.Time `json:"slot"`
	OK            bool      `json:"ok"`
	Skipped       bool      `json:"skipped,omitempty"`
	ReservationID string    `json:"reservationId,omitempty"`
	Error         string    `json:"error,omitempty"`
}

type BatchResponse struct {
	ID         string              `json:"id"`
	EmployeeID string              `json:"employeeId"`
	Date       string              `json:"date"`
	Requested  int                 `json:"requested"`
	Succeeded  int                 `json:"succeeded"`
	Failed     int                 `json:"failed"`
	Skipped    int                 `json:"skipped"`
	CreatedAt  time.Time           `json:"createdAt"`
	Items      []BatchItemResponse `json:"items,omitempty"`
}

func FromDomainBatch(b *domain.BlockBatch) BatchResponse {
	resp := BatchResponse{
		ID:         b.ID,
		EmployeeID: b.EmployeeID,
		Date:       b.Day.Format(domain.DateFormat),
		Requested:  b.Requested,
		Succeeded:  b.Succeeded,
		Failed:     b.Failed,
		Skipped:    b.Skipped,
		CreatedAt:  b.CreatedAt,
	}
	if len(b.Items) > 0 {
		resp.Items = make([]BatchItemResponse, len(b.Items))
		for i, it := range b.Items {
			resp.Items[i] = BatchItemResponse{
				Slot:          it.Slot,
				OK:            it.OK,
				Skipped:       it.Skipped,
				ReservationID: it.ReservationID,
				Error:         it.Error,
			}
		}
	}
	return resp
}

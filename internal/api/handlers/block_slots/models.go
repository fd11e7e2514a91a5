package block_slots

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	"github.com/m04kA/barber-frontdesk/internal/domain"
	bulkBlock "github.com/m04kA/barber-frontdesk/internal/usecase/bulk_block"
)

// BlockSlotsRequest HTTP request model
// slots - начала слотов в RFC 3339
type BlockSlotsRequest struct {
	EmployeeID string      `json:"employeeId"`
	Date       string      `json:"date"`
	Slots      []time.Time `json:"slots"`
}

type BlockItemResponse struct {
	Slot          time.Time `json:"slot"`
	Time          string    `json:"time"`
	OK            bool      `json:"ok"`
	Skipped       bool      `json:"skipped,omitempty"`
	ReservationID string    `json:"reservationId,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// BlockSlotsResponse итог блокировки. Частичный успех отдаётся как 200
type BlockSlotsResponse struct {
	BatchID      string                  `json:"batchId"`
	EmployeeID   string                  `json:"employeeId"`
	Date         string                  `json:"date"`
	Blocked      int                     `json:"blocked"`
	Failed       int                     `json:"failed"`
	Skipped      int                     `json:"skipped"`
	Items        []BlockItemResponse     `json:"items"`
	Status       string                  `json:"status"`
	Availability []handlers.SlotResponse `json:"availability"`
}

func (r *BlockSlotsRequest) ToUseCaseRequest(loc *time.Location) (*bulkBlock.Request, error) {
	day, err := handlers.ParseDate(r.Date, loc)
	if err != nil {
		return nil, err
	}
	return &bulkBlock.Request{EmployeeID: r.EmployeeID, Day: day, Slots: r.Slots}, nil
}

func FromUseCaseResponse(resp *bulkBlock.Response, loc *time.Location) *BlockSlotsResponse {
	out := &BlockSlotsResponse{
		BatchID:      resp.BatchID,
		EmployeeID:   resp.EmployeeID,
		Date:         resp.Day.In(loc).Format(domain.DateFormat),
		Blocked:      resp.Blocked,
		Failed:       resp.Failed,
		Skipped:      resp.Skipped,
		Items:        make([]BlockItemResponse, len(resp.Items)),
		Status:       string(resp.Status),
		Availability: handlers.FromDomainSlots(resp.Availability),
	}
	for i, it := range resp.Items {
		out.Items[i] = BlockItemResponse{
			Slot:          it.Slot,
			Time:          it.Slot.In(loc).Format(domain.TimeFormat),
			OK:            it.OK,
			Skipped:       it.Skipped,
			ReservationID: it.ReservationID,
			Error:         it.Error,
		}
	}
	return out
}

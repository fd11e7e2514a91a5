package get_available_slots

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	"github.com/m04kA/barber-frontdesk/internal/domain"
	getAvailableSlots "github.com/m04kA/barber-frontdesk/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
// status: ok, empty или error (бронирования не загрузились, slots пуст)
type AvailableSlotsResponse struct {
	Date       string                  `json:"date"`
	EmployeeID string                  `json:"employeeId"`
	Status     string                  `json:"status"`
	Slots      []handlers.SlotResponse `json:"slots"`
	AM         []handlers.SlotResponse `json:"am"`
	PM         []handlers.SlotResponse `json:"pm"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		EmployeeID: resp.EmployeeID,
		Status:     string(resp.Status),
		Slots:      handlers.FromDomainSlots(resp.Slots),
		AM:         handlers.FromDomainSlots(resp.AM),
		PM:         handlers.FromDomainSlots(resp.PM),
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, employeeID string, loc *time.Location) (*getAvailableSlots.Request, error) {
	date, err := handlers.ParseDate(dateStr, loc)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date, EmployeeID: employeeID}, nil
}

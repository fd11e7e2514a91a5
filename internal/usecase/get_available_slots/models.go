package get_available_slots

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	Date       time.Time // календарный день в часовом поясе салона
	EmployeeID string    // пустая строка - бронирования без мастера
}

// Response модель ответа со слотами дня
// Status=error означает, что бронирования загрузить не удалось и Slots пуст
type Response struct {
	Date       time.Time
	EmployeeID string
	Status     domain.AvailabilityStatus
	Slots      []domain.Slot
	AM         []domain.Slot
	PM         []domain.Slot
}

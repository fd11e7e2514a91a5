package bulk_block

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// Request запрос на блокировку слотов мастера
type Request struct {
	EmployeeID string
	Day        time.Time
	Slots      []time.Time
}

// Response итог блокировки
// Частичный успех не откатывается: Blocked + Failed + Skipped = числу уникальных запрошенных слотов
type Response struct {
	BatchID      string
	EmployeeID   string
	Day          time.Time
	Blocked      int
	Failed       int
	Skipped      int
	Items        []domain.BlockItem
	Availability []domain.Slot // пересчитанная доступность мастера на день
	Status       domain.AvailabilityStatus
}

// Исходы для метрик
const (
	outcomeBlocked = "blocked"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
)

// Причины отказа по слоту
const (
	reasonUnknownSlot = "unknown slot"
	reasonBooked      = "already booked"
)

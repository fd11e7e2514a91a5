package booking_flow

import (
	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// Availability слоты выбранного дня и мастера
type Availability struct {
	Status domain.AvailabilityStatus
	Slots  []domain.Slot
	AM     []domain.Slot
	PM     []domain.Slot
}

// View состояние сессии для клиента
// Availability заполняется, когда выбраны и день, и мастер
type View struct {
	Session      *domain.FlowSession
	Availability *Availability
}

// Result исход операции для метрик
const (
	resultConfirmed = "confirmed"
	resultFailed    = "failed"
	resultSlotTaken = "slot_taken"
)

// states, в которых клиент может менять выбор дня, мастера и слота
var selectableStates = map[domain.FlowState]bool{
	domain.FlowSelectingDate:     true,
	domain.FlowSelectingEmployee: true,
	domain.FlowSelectingSlot:     true,
	domain.FlowEnteringContact:   true,
	domain.FlowCodeSent:          true,
	domain.FlowFailed:            true,
}

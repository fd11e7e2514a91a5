package availability

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// middayMinutes граница AM/PM: 14:00 ещё относится к AM
const middayMinutes = 14 * 60

type slotKey struct {
	employeeID string
	unixMilli  int64
}

type index map[slotKey]*domain.Reservation

func buildIndex(reservations []domain.Reservation) index {
	idx := make(index, len(reservations))
	for i := range reservations {
		r := &reservations[i]
		idx[slotKey{employeeID: r.EmployeeID, unixMilli: r.Date.UnixMilli()}] = r
	}
	return idx
}

func (idx index) lookup(employeeID string, at time.Time) *domain.Reservation {
	return idx[slotKey{employeeID: employeeID, unixMilli: at.UnixMilli()}]
}

// Resolve помечает слоты занятыми по точному совпадению (employeeId, миллисекунды)
// Пустой employeeID сопоставляется с бронированиями без мастера
func Resolve(slots []time.Time, employeeID string, reservations []domain.Reservation) []domain.Slot {
	idx := buildIndex(reservations)

	out := make([]domain.Slot, len(slots))
	for i, at := range slots {
		out[i] = domain.Slot{Start: at, Label: at.Format(domain.TimeFormat)}
		if r := idx.lookup(employeeID, at); r != nil {
			out[i].Booked = true
			out[i].ReservationID = r.ID
		}
	}
	return out
}

// IsFree true, если у мастера нет бронирования ровно на at
func IsFree(at time.Time, employeeID string, reservations []domain.Reservation) bool {
	return buildIndex(reservations).lookup(employeeID, at) == nil
}

// IsAM true для слотов не позже 14:00 по часам слота
func IsAM(at time.Time) bool {
	return at.Hour()*60+at.Minute() <= middayMinutes
}

// SplitAMPM делит слоты на до и после 14:00 включительно-AM. Порядок сохраняется
func SplitAMPM(slots []domain.Slot) (am, pm []domain.Slot) {
	am = make([]domain.Slot, 0, len(slots))
	pm = make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if IsAM(s.Start) {
			am = append(am, s)
		} else {
			pm = append(pm, s)
		}
	}
	return am, pm
}

// Status статус выдачи: error при ошибке загрузки, empty для пустого дня
func Status(slots []domain.Slot, fetchErr error) domain.AvailabilityStatus {
	switch {
	case fetchErr != nil:
		return domain.AvailabilityError
	case len(slots) == 0:
		return domain.AvailabilityEmpty
	default:
		return domain.AvailabilityOK
	}
}

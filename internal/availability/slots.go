// Package availability derives a day's slots and their occupancy from reservations.
// The package is pure: no I/O, no clock, no logging. The booking flow, the admin
// grid, the bulk block and the kiosk board all go through it.
package availability

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/pkg/types"
)

// Generate возвращает моменты начала слотов дня от open до close включительно с шагом step минут
// Последний слот - самый поздний, не превышающий close. При step <= 0 или close < open - пустой список.
// Слоты строятся по настенным часам loc, поэтому в дни перевода часов подписи остаются ровными.
func Generate(day time.Time, open, close types.TimeString, step int, loc *time.Location) []time.Time {
	if step <= 0 || open.IsZero() || close.IsZero() || close.IsBefore(open) {
		return []time.Time{}
	}
	if loc == nil {
		loc = time.UTC
	}

	y, m, d := day.In(loc).Date()
	out := make([]time.Time, 0, (close.Minutes()-open.Minutes())/step+1)
	for cur := open.Minutes(); cur <= close.Minutes(); cur += step {
		out = append(out, time.Date(y, m, d, 0, cur, 0, 0, loc))
	}
	return out
}

// GenerateFor Generate по рабочим часам поверхности
func GenerateFor(day time.Time, hours domain.BusinessHours, loc *time.Location) []time.Time {
	return Generate(day, hours.Open, hours.Close, hours.Step, loc)
}

// Contains true, если at совпадает с одним из слотов с точностью до миллисекунды
func Contains(slots []time.Time, at time.Time) bool {
	ms := at.UnixMilli()
	for _, s := range slots {
		if s.UnixMilli() == ms {
			return true
		}
	}
	return false
}

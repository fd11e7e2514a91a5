package kiosk_board

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/availability"
	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// Board снимок табло на сегодня
type Board struct {
	Day        time.Time
	Status     domain.AvailabilityStatus
	Grid       availability.Grid
	AMTimes    []time.Time
	PMTimes    []time.Time
	Highlights []Highlight
	Banners    []Banner
	UpdatedAt  time.Time
	Error      string // последняя ошибка опроса, прежняя сетка при этом сохраняется
}

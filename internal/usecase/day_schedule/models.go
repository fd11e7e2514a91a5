package day_schedule

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/availability"
)

// Request запрос сетки дня
type Request struct {
	Date time.Time
}

// Response сетка мастера × слоты
type Response struct {
	Grid availability.Grid
}

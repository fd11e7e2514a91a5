package handlers

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// SlotResponse слот в ответах API
type SlotResponse struct {
	Start  time.Time `json:"start"`
	Time   string    `json:"time"`
	Booked bool      `json:"booked"`
}

// FromDomainSlots конвертирует слоты. Никогда не возвращает nil, чтобы в JSON был []
func FromDomainSlots(slots []domain.Slot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{Start: s.Start, Time: s.Label, Booked: s.Booked}
	}
	return out
}

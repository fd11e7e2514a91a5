package booking_flow

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	"github.com/m04kA/barber-frontdesk/internal/domain"
	bookingFlow "github.com/m04kA/barber-frontdesk/internal/usecase/booking_flow"
)

type SelectDateRequest struct {
	Date string `json:"date"`
}

type SelectEmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
}

type SelectSlotRequest struct {
	Start string `json:"start"`
}

type SendCodeRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type VerifyRequest struct {
	Code string `json:"code"`
}

type AvailabilityResponse struct {
	Status string                  `json:"status"`
	Slots  []handlers.SlotResponse `json:"slots"`
	AM     []handlers.SlotResponse `json:"am"`
	PM     []handlers.SlotResponse `json:"pm"`
}

// FlowResponse состояние сессии записи
// Контакт клиента в ответ не попадает
type FlowResponse struct {
	ID            string                `json:"id"`
	State         string                `json:"state"`
	Date          string                `json:"date,omitempty"`
	EmployeeID    string                `json:"employeeId,omitempty"`
	Slot          *time.Time            `json:"slot,omitempty"`
	SlotTime      string                `json:"slotTime,omitempty"`
	Channel       string                `json:"channel,omitempty"`
	ReservationID string                `json:"reservationId,omitempty"`
	Error         string                `json:"error,omitempty"`
	Availability  *AvailabilityResponse `json:"availability,omitempty"`
}

func FromView(v *bookingFlow.View, loc *time.Location) *FlowResponse {
	s := v.Session
	resp := &FlowResponse{
		ID:            s.ID,
		State:         string(s.State),
		EmployeeID:    s.EmployeeID,
		Channel:       string(s.Channel),
		ReservationID: s.ReservationID,
		Error:         s.LastError,
	}
	if s.Day != nil {
		resp.Date = s.Day.In(loc).Format(domain.DateFormat)
	}
	if s.Slot != nil {
		slot := *s.Slot
		resp.Slot = &slot
		resp.SlotTime = slot.In(loc).Format(domain.TimeFormat)
	}
	if v.Availability != nil {
		resp.Availability = &AvailabilityResponse{
			Status: string(v.Availability.Status),
			Slots:  handlers.FromDomainSlots(v.Availability.Slots),
			AM:     handlers.FromDomainSlots(v.Availability.AM),
			PM:     handlers.FromDomainSlots(v.Availability.PM),
		}
	}
	return resp
}

package domain

import "time"

// FlowState state of the public booking flow
type FlowState string

const (
	FlowSelectingDate     FlowState = "selecting_date"
	FlowSelectingEmployee FlowState = "selecting_employee"
	FlowSelectingSlot     FlowState = "selecting_slot"
	FlowEnteringContact   FlowState = "entering_contact"
	FlowCodeSent          FlowState = "code_sent"
	FlowBooking           FlowState = "booking"
	FlowConfirmed         FlowState = "confirmed"
	FlowFailed            FlowState = "failed"
)

// FlowSession represents one customer's walk through the booking flow
type FlowSession struct {
	ID            string
	State         FlowState
	Day           *time.Time
	EmployeeID    string
	Slot          *time.Time
	CustomerName  string
	Contact       string
	Channel       ContactChannel
	CodeSentAt    *time.Time
	ReservationID string // set once confirmed
	LastError     string
	ResumeState   FlowState // state to return to on Retry after a failure
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ClearSlot drops the selected slot and everything entered after it
func (s *FlowSession) ClearSlot() {
	s.Slot = nil
	s.CodeSentAt = nil
}

// ResetContact clears the contact form, keeping the confirmation
func (s *FlowSession) ResetContact() {
	s.CustomerName = ""
	s.Contact = ""
	s.Channel = ""
	s.CodeSentAt = nil
}

// Fail moves the session to failed, remembering where to resume
func (s *FlowSession) Fail(from FlowState, msg string) {
	s.ResumeState = from
	s.State = FlowFailed
	s.LastError = msg
}

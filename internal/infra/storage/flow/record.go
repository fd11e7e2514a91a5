package flow

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// record форма хранения сессии
type record struct {
	ID            string     `json:"id"`
	State         string     `json:"state"`
	Day           *time.Time `json:"day,omitempty"`
	EmployeeID    string     `json:"employeeId,omitempty"`
	Slot          *time.Time `json:"slot,omitempty"`
	CustomerName  string     `json:"customerName,omitempty"`
	Contact       string     `json:"contact,omitempty"`
	Channel       string     `json:"channel,omitempty"`
	CodeSentAt    *time.Time `json:"codeSentAt,omitempty"`
	ReservationID string     `json:"reservationId,omitempty"`
	LastError     string     `json:"lastError,omitempty"`
	ResumeState   string     `json:"resumeState,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func encode(s *domain.FlowSession) ([]byte, error) {
	data, err := json.Marshal(record{
		ID:            s.ID,
		State:         string(s.State),
		Day:           s.Day,
		EmployeeID:    s.EmployeeID,
		Slot:          s.Slot,
		CustomerName:  s.CustomerName,
		Contact:       s.Contact,
		Channel:       string(s.Channel),
		CodeSentAt:    s.CodeSentAt,
		ReservationID: s.ReservationID,
		LastError:     s.LastError,
		ResumeState:   string(s.ResumeState),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

func decode(data []byte) (*domain.FlowSession, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &domain.FlowSession{
		ID:            r.ID,
		State:         domain.FlowState(r.State),
		Day:           r.Day,
		EmployeeID:    r.EmployeeID,
		Slot:          r.Slot,
		CustomerName:  r.CustomerName,
		Contact:       r.Contact,
		Channel:       domain.ContactChannel(r.Channel),
		CodeSentAt:    r.CodeSentAt,
		ReservationID: r.ReservationID,
		LastError:     r.LastError,
		ResumeState:   domain.FlowState(r.ResumeState),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}

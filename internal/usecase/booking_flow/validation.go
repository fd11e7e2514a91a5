package booking_flow

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

func requireState(s *domain.FlowSession, allowed ...domain.FlowState) error {
	for _, st := range allowed {
		if s.State == st {
			return nil
		}
	}
	return fmt.Errorf("%w: state %s", ErrInvalidState, s.State)
}

func requireSelectable(s *domain.FlowSession) error {
	if !selectableStates[s.State] {
		return fmt.Errorf("%w: state %s", ErrInvalidState, s.State)
	}
	return nil
}

// validateDate день не раньше сегодняшнего в часовом поясе салона
func validateDate(date, now time.Time, loc *time.Location) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	if domain.StartOfDay(date, loc).Before(domain.StartOfDay(now, loc)) {
		return fmt.Errorf("%w: %s", domain.ErrDateInPast, date.In(loc).Format(domain.DateFormat))
	}
	return nil
}

// validateContactForm проверка перед отправкой кода: слот, мастер, имя и контакт
func validateContactForm(s *domain.FlowSession, name, contact string) (domain.ContactChannel, string, error) {
	if s.Slot == nil {
		return "", "", fmt.Errorf("%w: slot is not selected", ErrInvalidState)
	}
	if s.EmployeeID == "" {
		return "", "", fmt.Errorf("%w: employee is not selected", ErrInvalidState)
	}
	if strings.TrimSpace(name) == "" {
		return "", "", fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	return domain.ParseContact(contact)
}

package domain

import "errors"

var (
	// ErrSlotTaken slot was booked by someone else between selection and commit
	ErrSlotTaken = errors.New("slot just taken")

	// ErrInvalidContact contact is neither an email nor a German mobile number
	ErrInvalidContact = errors.New("invalid contact")

	// ErrInvalidState operation is not allowed in the current booking flow state
	ErrInvalidState = errors.New("operation not allowed in current state")

	// ErrFlowNotFound booking flow session does not exist or expired
	ErrFlowNotFound = errors.New("booking flow not found")

	// ErrTooManyCodes verification code rate limit exceeded
	ErrTooManyCodes = errors.New("too many verification codes requested")

	// ErrInvalidInput generic validation failure
	ErrInvalidInput = errors.New("invalid input")

	// ErrDateInPast selected date lies before today
	ErrDateInPast = errors.New("date is in the past")

	// ErrUnknownSlot timestamp is not one of the generated slots of the day
	ErrUnknownSlot = errors.New("unknown slot")

	// ErrEmployeeNotFound employee id does not exist
	ErrEmployeeNotFound = errors.New("employee not found")
)

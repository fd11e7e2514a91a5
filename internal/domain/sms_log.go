package domain

import "time"

// SmsStatus delivery outcome of a verification SMS
type SmsStatus string

const (
	SmsStatusOK        SmsStatus = "ok"
	SmsStatusError     SmsStatus = "error"
	SmsStatusException SmsStatus = "exception"
)

// SmsLog represents one SMS delivery attempt
type SmsLog struct {
	ID        string
	To        string
	Status    SmsStatus
	ErrorText *string
	CreatedAt time.Time
}

// SmsLogGroup delivery statistics per phone number
type SmsLogGroup struct {
	To        string
	Total     int
	OK        int
	Error     int
	Exception int
	Last      time.Time
	Logs      []SmsLog
}

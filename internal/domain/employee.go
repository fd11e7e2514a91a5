package domain

import "time"

// Employee represents a barber
type Employee struct {
	ID        string
	Name      string
	NameAr    string // localized name
	PhotoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Photo is an uploaded employee picture passed through to the reservation API as is
type Photo struct {
	FileName    string
	ContentType string
	Data        []byte
}

// EmployeeInput multipart fields for employee create/update
type EmployeeInput struct {
	Name   string
	NameAr string
	Photo  *Photo
}

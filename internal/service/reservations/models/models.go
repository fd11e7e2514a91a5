package models

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// Request модели

// ListReservationsRequest фильтры списка бронирований
type ListReservationsRequest struct {
	Date       *time.Time `json:"date,omitempty"`
	EmployeeID *string    `json:"employeeId,omitempty"`
}

// CreateReservationRequest создание бронирования администратором
type CreateReservationRequest struct {
	CustomerName string    `json:"customerName"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Service      string    `json:"service"`
	Date         time.Time `json:"date"`
	EmployeeID   string    `json:"employeeId"`
}

// ToDomain конвертирует запрос в domain.Reservation
func (r *CreateReservationRequest) ToDomain() domain.Reservation {
	return domain.Reservation{
		CustomerName: r.CustomerName,
		Email:        emptyToNil(r.Email),
		Phone:        emptyToNil(r.Phone),
		Service:      r.Service,
		Date:         r.Date,
		EmployeeID:   r.EmployeeID,
	}
}

// UpdateReservationRequest частичное обновление: nil поле не меняется
type UpdateReservationRequest struct {
	CustomerName *string    `json:"customerName,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Service      *string    `json:"service,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	EmployeeID   *string    `json:"employeeId,omitempty"`
}

// ToDomain конвертирует запрос в domain.ReservationInput
func (r *UpdateReservationRequest) ToDomain() domain.ReservationInput {
	return domain.ReservationInput{
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Phone:        r.Phone,
		Service:      r.Service,
		Date:         r.Date,
		EmployeeID:   r.EmployeeID,
	}
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Service      string    `json:"service"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"` // "10:00" в часовом поясе салона
	EmployeeID   string    `json:"employeeId,omitempty"`
	EmployeeName string    `json:"employeeName"`
	IsBlock      bool      `json:"isBlock"`
}

// EmployeeGroup бронирования одного мастера
type EmployeeGroup struct {
	EmployeeID   string                `json:"employeeId,omitempty"`
	EmployeeName string                `json:"employeeName"`
	Reservations []ReservationResponse `json:"reservations"`
}

// ReservationListResponse бронирования, разделённые на сегодня, будущие и прошедшие
type ReservationListResponse struct {
	Today  []EmployeeGroup `json:"today"`
	Future []EmployeeGroup `json:"future"`
	Past   []EmployeeGroup `json:"past"`
	Total  int             `json:"total"`
}

// FromDomainReservation конвертирует domain.Reservation в ответ
func FromDomainReservation(r *domain.Reservation, loc *time.Location) ReservationResponse {
	name := r.EmployeeName
	if r.IsUnassigned() {
		name = domain.UnassignedEmployeeName
	}
	return ReservationResponse{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Phone:        r.Phone,
		Service:      r.Service,
		Date:         r.Date,
		Time:         r.Date.In(loc).Format(domain.TimeFormat),
		EmployeeID:   r.EmployeeID,
		EmployeeName: name,
		IsBlock:      r.IsBlock(),
	}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

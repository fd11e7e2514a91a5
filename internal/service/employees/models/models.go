package models

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// EmployeeResponse ответ с данными мастера
type EmployeeResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	NameAr    string     `json:"nameAr,omitempty"`
	PhotoURL  string     `json:"photoUrl"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainEmployee конвертирует domain.Employee в ответ
func FromDomainEmployee(e *domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{ID: e.ID, Name: e.Name, NameAr: e.NameAr, PhotoURL: e.PhotoURL}
	if !e.CreatedAt.IsZero() {
		t := e.CreatedAt
		resp.CreatedAt = &t
	}
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

// FromDomainEmployeeList конвертирует список мастеров
func FromDomainEmployeeList(list []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(list))
	for i := range list {
		out[i] = FromDomainEmployee(&list[i])
	}
	return out
}

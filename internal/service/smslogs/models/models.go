package models

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// ListSmsLogsRequest фильтры журнала SMS
type ListSmsLogsRequest struct {
	Status  *string `json:"status,omitempty"` // ok, error, exception
	Phone   string  `json:"phone,omitempty"`  // подстрока номера
	Grouped bool    `json:"grouped,omitempty"`
}

// SmsLogResponse запись журнала
type SmsLogResponse struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	Status    string    `json:"status"`
	ErrorText *string   `json:"errorText,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SmsLogGroupResponse сводка по номеру
type SmsLogGroupResponse struct {
	To        string           `json:"to"`
	Total     int              `json:"total"`
	OK        int              `json:"ok"`
	Error     int              `json:"error"`
	Exception int              `json:"exception"`
	Last      time.Time        `json:"last"`
	Logs      []SmsLogResponse `json:"logs"`
}

// SmsLogListResponse плоский список или сводка по номерам, в зависимости от Grouped
type SmsLogListResponse struct {
	Total  int                   `json:"total"`
	Logs   []SmsLogResponse      `json:"logs,omitempty"`
	Groups []SmsLogGroupResponse `json:"groups,omitempty"`
}

// FromDomainSmsLog конвертирует domain.SmsLog в ответ
func FromDomainSmsLog(l *domain.SmsLog) SmsLogResponse {
	return SmsLogResponse{ID: l.ID, To: l.To, Status: string(l.Status), ErrorText: l.ErrorText, CreatedAt: l.CreatedAt}
}

// FromDomainSmsLogList конвертирует список записей
func FromDomainSmsLogList(list []domain.SmsLog) []SmsLogResponse {
	out := make([]SmsLogResponse, len(list))
	for i := range list {
		out[i] = FromDomainSmsLog(&list[i])
	}
	return out
}

// FromDomainSmsLogGroup конвертирует сводку по номеру
func FromDomainSmsLogGroup(g *domain.SmsLogGroup) SmsLogGroupResponse {
	return SmsLogGroupResponse{
		To:        g.To,
		Total:     g.Total,
		OK:        g.OK,
		Error:     g.Error,
		Exception: g.Exception,
		Last:      g.Last,
		Logs:      FromDomainSmsLogList(g.Logs),
	}
}

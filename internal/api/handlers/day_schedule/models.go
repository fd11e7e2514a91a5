package day_schedule

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/availability"
	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// ScheduleResponse сетка дня для админки
type ScheduleResponse struct {
	Date  string        `json:"date"`
	Times []string      `json:"times"`
	Rows  []RowResponse `json:"rows"`
}

type RowResponse struct {
	EmployeeID   string         `json:"employeeId"`
	EmployeeName string         `json:"employeeName"`
	NameAr       string         `json:"nameAr,omitempty"`
	PhotoURL     string         `json:"photoUrl,omitempty"`
	Cells        []CellResponse `json:"cells"`
}

// CellResponse ячейка сетки. Blocked - слот закрыт блокировкой, а не клиентом
type CellResponse struct {
	Start       time.Time            `json:"start"`
	Time        string               `json:"time"`
	Booked      bool                 `json:"booked"`
	Blocked     bool                 `json:"blocked"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
}

type ReservationResponse struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customerName"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Service      string  `json:"service"`
}

func FromGrid(g availability.Grid, loc *time.Location) *ScheduleResponse {
	resp := &ScheduleResponse{
		Date:  g.Day.In(loc).Format(domain.DateFormat),
		Times: make([]string, len(g.Times)),
		Rows:  make([]RowResponse, 0, len(g.Rows)),
	}
	for i, t := range g.Times {
		resp.Times[i] = t.In(loc).Format(domain.TimeFormat)
	}
	for _, row := range g.Rows {
		out := RowResponse{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			NameAr:       row.NameAr,
			PhotoURL:     row.PhotoURL,
			Cells:        make([]CellResponse, len(row.Cells)),
		}
		for i, c := range row.Cells {
			cell := CellResponse{Start: c.Start, Time: c.Label, Booked: c.Booked}
			if r := c.Reservation; r != nil {
				cell.Blocked = r.IsBlock()
				if !cell.Blocked {
					cell.Reservation = &ReservationResponse{
						ID:           r.ID,
						CustomerName: r.CustomerName,
						Email:        r.Email,
						Phone:        r.Phone,
						Service:      r.Service,
					}
				}
			}
			out.Cells[i] = cell
		}
		resp.Rows = append(resp.Rows, out)
	}
	return resp
}

package kiosk

import (
	"encoding/json"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/usecase/kiosk_board"
)

// Payload JSON-представление табло. Одинаково для GET /kiosk/board и сообщений websocket
type Payload struct {
	Type       string             `json:"type"`
	Date       string             `json:"date"`
	Status     string             `json:"status"`
	Error      string             `json:"error,omitempty"`
	AMTimes    []string           `json:"amTimes"`
	PMTimes    []string           `json:"pmTimes"`
	Rows       []PayloadRow       `json:"rows"`
	Highlights []PayloadHighlight `json:"highlights"`
	Banners    []PayloadBanner    `json:"banners"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// PayloadRow строка табло
type PayloadRow struct {
	EmployeeID   string        `json:"employeeId"`
	EmployeeName string        `json:"employeeName"`
	NameAr       string        `json:"nameAr,omitempty"`
	PhotoURL     string        `json:"photoUrl,omitempty"`
	Cells        []PayloadCell `json:"cells"`
}

// PayloadCell ячейка табло. Клиентские контакты на экран не выводятся
type PayloadCell struct {
	Time          string `json:"time"`
	Booked        bool   `json:"booked"`
	Blocked       bool   `json:"blocked,omitempty"`
	ReservationID string `json:"reservationId,omitempty"`
	CustomerName  string `json:"customerName,omitempty"`
	Highlighted   bool   `json:"highlighted,omitempty"`
}

// PayloadHighlight подсветка нового бронирования
type PayloadHighlight struct {
	ReservationID string    `json:"reservationId"`
	Until         time.Time `json:"until"`
}

// PayloadBanner баннер о новом бронировании
type PayloadBanner struct {
	ReservationID string    `json:"reservationId"`
	Text          string    `json:"text"`
	Until         time.Time `json:"until"`
}

const payloadType = "board"

// NewPayload строит JSON-представление снимка
func NewPayload(b *kiosk_board.Board) Payload {
	highlighted := make(map[string]bool, len(b.Highlights))
	p := Payload{
		Type:       payloadType,
		Date:       b.Day.Format(domain.DateFormat),
		Status:     string(b.Status),
		Error:      b.Error,
		AMTimes:    labels(b.AMTimes),
		PMTimes:    labels(b.PMTimes),
		Rows:       make([]PayloadRow, 0, len(b.Grid.Rows)),
		Highlights: make([]PayloadHighlight, 0, len(b.Highlights)),
		Banners:    make([]PayloadBanner, 0, len(b.Banners)),
		UpdatedAt:  b.UpdatedAt,
	}
	for _, h := range b.Highlights {
		highlighted[h.ReservationID] = true
		p.Highlights = append(p.Highlights, PayloadHighlight{ReservationID: h.ReservationID, Until: h.Until})
	}
	for _, bn := range b.Banners {
		p.Banners = append(p.Banners, PayloadBanner{ReservationID: bn.ReservationID, Text: bn.Text, Until: bn.Until})
	}

	for _, row := range b.Grid.Rows {
		pr := PayloadRow{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			NameAr:       row.NameAr,
			PhotoURL:     row.PhotoURL,
			Cells:        make([]PayloadCell, len(row.Cells)),
		}
		for i, c := range row.Cells {
			pc := PayloadCell{Time: c.Label, Booked: c.Booked, ReservationID: c.ReservationID}
			if c.Reservation != nil {
				if c.Reservation.IsBlock() {
					pc.Blocked = true
				} else {
					pc.CustomerName = c.Reservation.CustomerName
				}
				pc.Highlighted = highlighted[c.Reservation.ID]
			}
			pr.Cells[i] = pc
		}
		p.Rows = append(p.Rows, pr)
	}
	return p
}

// Encode сериализует снимок для отправки подписчикам
func Encode(b *kiosk_board.Board) ([]byte, error) {
	return json.Marshal(NewPayload(b))
}

func labels(times []time.Time) []string {
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = t.Format(domain.TimeFormat)
	}
	return out
}

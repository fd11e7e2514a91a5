package day_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/availability"
	"github.com/m04kA/barber-frontdesk/internal/domain"
	daySchedule "github.com/m04kA/barber-frontdesk/internal/usecase/day_schedule"
	"github.com/m04kA/barber-frontdesk/pkg/logger"
)

type fakeUseCase struct {
	got  *daySchedule.Request
	resp *daySchedule.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *daySchedule.Request) (*daySchedule.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestHandler_RendersGrid(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	day := time.Date(2025, 3, 14, 0, 0, 0, 0, loc)
	nine := time.Date(2025, 3, 14, 9, 0, 0, 0, loc)
	ten := time.Date(2025, 3, 14, 10, 0, 0, 0, loc)
	phone := "+4915112345678"
	client := domain.Reservation{ID: "R1", CustomerName: "Max", Phone: &phone, Service: "Haircut", Date: nine, EmployeeID: "E1"}
	block := domain.NewBlockReservation("E1", ten)
	block.ID = "R2"

	uc := &fakeUseCase{resp: &daySchedule.Response{Grid: availability.Grid{
		Day:   day,
		Times: []time.Time{nine, ten},
		Rows: []availability.Row{{
			EmployeeID:   "E1",
			EmployeeName: "Ali",
			Cells: []availability.Cell{
				{Slot: domain.Slot{Start: nine, Label: "09:00", Booked: true, ReservationID: "R1"}, Reservation: &client},
				{Slot: domain.Slot{Start: ten, Label: "10:00", Booked: true, ReservationID: "R2"}, Reservation: &block},
			},
		}},
	}}}

	rec := httptest.NewRecorder()
	NewHandler(uc, loc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/admin/schedule?date=2025-03-14", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.got.Date.Equal(day))

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-14", resp.Date)
	assert.Equal(t, []string{"09:00", "10:00"}, resp.Times)
	require.Len(t, resp.Rows, 1)
	cells := resp.Rows[0].Cells
	require.Len(t, cells, 2)
	require.NotNil(t, cells[0].Reservation)
	assert.Equal(t, "Max", cells[0].Reservation.CustomerName)
	assert.False(t, cells[0].Blocked)
	assert.True(t, cells[1].Blocked)
	assert.Nil(t, cells[1].Reservation)
}

func TestHandler_Errors(t *testing.T) {
	loc := time.UTC

	rec := httptest.NewRecorder()
	NewHandler(&fakeUseCase{}, loc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/admin/schedule?date=14-03", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeUseCase{err: daySchedule.ErrUpstream}, loc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/admin/schedule", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

package day_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/pkg/logger"
	"github.com/m04kA/barber-frontdesk/pkg/types"
)

type stubAPI struct {
	employees    []domain.Employee
	reservations []domain.Reservation
	empErr       error
}

func (s *stubAPI) ListReservations(context.Context, domain.ReservationFilter) ([]domain.Reservation, error) {
	return s.reservations, nil
}

func (s *stubAPI) ListEmployees(context.Context) ([]domain.Employee, error) {
	return s.employees, s.empErr
}

func gridHours() domain.BusinessHours {
	return domain.BusinessHours{Open: types.MustTimeString("09:00"), Close: types.MustTimeString("20:00"), Step: 30}
}

func TestExecute_BuildsGrid(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	api := &stubAPI{
		employees: []domain.Employee{{ID: "E", Name: "Ali"}, {ID: "F", Name: "Omar"}},
		reservations: []domain.Reservation{
			{ID: "r1", EmployeeID: "F", CustomerName: "Max", Date: time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)},
			{ID: "r2", CustomerName: "Walk-in", Date: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)},
		},
	}
	uc := NewUseCase(api, gridHours(), time.UTC, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)

	grid := resp.Grid
	assert.Len(t, grid.Times, 23)
	require.Len(t, grid.Rows, 3)
	assert.Equal(t, domain.UnassignedEmployee, grid.Rows[0].EmployeeID)
	assert.Equal(t, "E", grid.Rows[1].EmployeeID)

	cell := grid.Rows[2].Cells[1]
	assert.Equal(t, "09:30", cell.Label)
	assert.True(t, cell.Booked)
	require.NotNil(t, cell.Reservation)
	assert.Equal(t, "Max", cell.Reservation.CustomerName)
	assert.False(t, grid.Rows[1].Cells[1].Booked)
}

func TestExecute_EmployeesUnavailable(t *testing.T) {
	uc := NewUseCase(&stubAPI{empErr: errors.New("503")}, gridHours(), time.UTC, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Date: time.Now()})
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

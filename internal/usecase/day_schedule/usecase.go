package day_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/availability"
	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// UseCase сетка дня для администратора
type UseCase struct {
	api    ReservationAPI
	hours  domain.BusinessHours
	loc    *time.Location
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(api ReservationAPI, hours domain.BusinessHours, loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{api: api, hours: hours, loc: loc, logger: logger}
}

// Execute строит сетку дня. Бронирования без мастера выводятся отдельной первой строкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	day := domain.StartOfDay(req.Date, uc.loc)

	employees, err := uc.api.ListEmployees(ctx)
	if err != nil {
		uc.logger.Error("DaySchedule: failed to list employees: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	reservations, err := uc.api.ListReservations(ctx, domain.ReservationFilter{Day: &day})
	if err != nil {
		uc.logger.Error("DaySchedule: failed to list reservations for %s: %v", day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	grid := availability.BuildGrid(day, uc.hours, uc.loc, employees, reservations, true)

	uc.logger.Info("DaySchedule: date=%s, employees=%d, reservations=%d",
		day.Format(domain.DateFormat), len(employees), len(reservations))

	return &Response{Grid: grid}, nil
}

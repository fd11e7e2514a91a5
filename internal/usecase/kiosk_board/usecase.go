package kiosk_board

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/availability"
	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// ErrUpstream не удалось загрузить данные для табло
var ErrUpstream = errors.New("usecase: reservation service unavailable")

// UseCase табло "сегодня" для экрана в салоне
// Хранит последний снимок: при ошибке опроса показывается прежняя сетка с текстом ошибки
type UseCase struct {
	api          ReservationAPI
	tracker      *Tracker
	hours        domain.BusinessHours
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger

	mu        sync.RWMutex
	employees []domain.Employee
	board     *Board
}

type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }

// NewUseCase создает новый экземпляр use case
func NewUseCase(api ReservationAPI, tracker *Tracker, hours domain.BusinessHours, loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		api:          api,
		tracker:      tracker,
		hours:        hours,
		loc:          loc,
		timeProvider: realTime{},
		logger:       logger,
	}
}

// Refresh опрашивает API, отмечает новые бронирования и обновляет снимок
// Отменённый опрос снимок не меняет
func (uc *UseCase) Refresh(ctx context.Context) (*Board, error) {
	now := uc.timeProvider.Now()

	employees, empErr := uc.api.ListEmployees(ctx)
	reservations, resErr := uc.api.ListReservations(ctx, domain.ReservationFilter{})
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if empErr != nil {
		// мастера меняются редко, при сбое показываем прежний список
		uc.logger.Warn("KioskBoard: failed to list employees: %v", empErr)
		employees = uc.employees
	} else {
		uc.employees = employees
	}

	if resErr != nil {
		uc.logger.Error("KioskBoard: failed to list reservations: %v", resErr)
		board := uc.lastOrEmptyLocked(now)
		board.Status = domain.AvailabilityError
		board.Error = resErr.Error()
		uc.board = board
		return uc.withActive(board), fmt.Errorf("%w: %v", ErrUpstream, resErr)
	}

	fresh := uc.tracker.Observe(reservations)
	if len(fresh) > 0 {
		uc.logger.Info("KioskBoard: %d new reservation(s)", len(fresh))
	}

	board := uc.buildLocked(now, employees, reservations)
	uc.board = board
	return uc.withActive(board), nil
}

// Current последний снимок с актуальными подсветками. nil, если опросов ещё не было
func (uc *UseCase) Current() *Board {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.board == nil {
		return nil
	}
	return uc.withActive(uc.board)
}

// Expire снимает истёкшие подсветки и баннеры. changed=false, если снимок не изменился
func (uc *UseCase) Expire() (*Board, bool) {
	if !uc.tracker.Sweep() {
		return nil, false
	}
	board := uc.Current()
	return board, board != nil
}

// NextExpiry ближайший момент, когда снимок изменится без опроса
func (uc *UseCase) NextExpiry() (time.Time, bool) {
	return uc.tracker.NextExpiry()
}

func (uc *UseCase) buildLocked(now time.Time, employees []domain.Employee, reservations []domain.Reservation) *Board {
	day := domain.StartOfDay(now, uc.loc)
	grid := availability.BuildGrid(day, uc.hours, uc.loc, employees, reservations, true)

	board := &Board{Day: day, Grid: grid, UpdatedAt: now}
	for _, at := range grid.Times {
		if availability.IsAM(at) {
			board.AMTimes = append(board.AMTimes, at)
		} else {
			board.PMTimes = append(board.PMTimes, at)
		}
	}
	board.Status = domain.AvailabilityOK
	if len(grid.Times) == 0 {
		board.Status = domain.AvailabilityEmpty
	}
	return board
}

func (uc *UseCase) lastOrEmptyLocked(now time.Time) *Board {
	if uc.board != nil {
		b := *uc.board
		b.UpdatedAt = now
		return &b
	}
	return uc.buildLocked(now, uc.employees, nil)
}

// withActive копия снимка с текущими подсветками и баннерами
func (uc *UseCase) withActive(b *Board) *Board {
	out := *b
	out.Highlights, out.Banners = uc.tracker.Active()
	return &out
}

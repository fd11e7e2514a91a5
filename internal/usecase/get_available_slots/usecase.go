package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/availability"
	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// UseCase use case для получения слотов дня с занятостью
type UseCase struct {
	reservations ReservationsClient
	hours        domain.BusinessHours
	loc          *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationsClient,
	hours domain.BusinessHours,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		hours:        hours,
		loc:          loc,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
// Ошибка загрузки бронирований не возвращается наружу: ответ приходит со Status=error и пустым списком
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	day := domain.StartOfDay(req.Date, uc.loc)
	resp := &Response{
		Date:       day,
		EmployeeID: req.EmployeeID,
		Slots:      []domain.Slot{},
		AM:         []domain.Slot{},
		PM:         []domain.Slot{},
	}

	// 2. Получаем бронирования мастера на день
	employeeID := req.EmployeeID
	reservations, err := uc.reservations.ListReservations(ctx, domain.ReservationFilter{
		Day:        &day,
		EmployeeID: &employeeID,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list reservations for %s: %v", day.Format(domain.DateFormat), err)
		resp.Status = availability.Status(nil, err)
		return resp, nil
	}

	// 3. Генерируем слоты и отмечаем занятые
	slots := availability.Resolve(availability.GenerateFor(day, uc.hours, uc.loc), req.EmployeeID, reservations)
	resp.Slots = slots
	resp.AM, resp.PM = availability.SplitAMPM(slots)
	resp.Status = availability.Status(slots, nil)

	uc.logger.Info("GetAvailableSlots: date=%s, employee=%q, slots=%d, reservations=%d",
		day.Format(domain.DateFormat), req.EmployeeID, len(slots), len(reservations))

	return resp, nil
}

package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/internal/service/reservations/models"
)

// conflictWindow минимальное расстояние между бронированиями мастера при ручном создании
const conflictWindow = domain.AdminConflictWindowMinutes * time.Minute

type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }

// Service сервис администрирования бронирований
type Service struct {
	api          ReservationAPI
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(api ReservationAPI, loc *time.Location, logger Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{api: api, loc: loc, timeProvider: realTime{}, logger: logger}
}

// List получает бронирования и делит их на сегодня, будущие и прошедшие
// Внутри каждой группы бронирования сгруппированы по мастерам и отсортированы по времени
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter := domain.ReservationFilter{EmployeeID: req.EmployeeID}
	if req.Date != nil {
		day := domain.StartOfDay(*req.Date, s.loc)
		filter.Day = &day
	}

	list, err := s.api.ListReservations(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to list reservations: %v", err)
		return nil, mapUpstream("List", err)
	}

	// имена мастеров нужны только для подписи групп, без них список всё равно полезен
	names := make(map[string]string)
	employees, err := s.api.ListEmployees(ctx)
	if err != nil {
		s.logger.Warn("List: failed to list employees, groups keep reservation names: %v", err)
	}
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	now := s.timeProvider.Now()
	startOfToday := domain.StartOfDay(now, s.loc)
	startOfTomorrow := startOfToday.AddDate(0, 0, 1)

	var today, future, past []domain.Reservation
	for _, r := range list {
		switch {
		case r.Date.Before(startOfToday):
			past = append(past, r)
		case r.Date.Before(startOfTomorrow):
			today = append(today, r)
		default:
			future = append(future, r)
		}
	}

	resp := &models.ReservationListResponse{
		Today:  s.groupByEmployee(today, names, false),
		Future: s.groupByEmployee(future, names, false),
		Past:   s.groupByEmployee(past, names, true),
		Total:  len(list),
	}

	s.logger.Info("List: fetched %d reservations (today=%d, future=%d, past=%d)",
		len(list), len(today), len(future), len(past))
	return resp, nil
}

// Create создает бронирование от имени администратора
// Конфликт: у мастера есть бронирование ближе 30 минут к новому
func (s *Service) Create(ctx context.Context, sess *reservationapi.Session, req *models.CreateReservationRequest) (*models.ReservationResponse, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	employeeID := req.EmployeeID
	existing, err := s.api.ListReservations(ctx, domain.ReservationFilter{EmployeeID: &employeeID})
	if err != nil {
		s.logger.Error("Create: failed to list reservations of employee=%s: %v", employeeID, err)
		return nil, mapUpstream("Create", err)
	}
	if conflict := findNear(existing, req.Date, conflictWindow); conflict != nil {
		s.logger.Warn("Create: employee=%s already has reservation=%s at %s",
			employeeID, conflict.ID, conflict.Date.In(s.loc).Format(time.RFC3339))
		return nil, ErrSlotTaken
	}

	created, err := s.api.CreateReservation(ctx, sess, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: failed to create reservation: %v", err)
		return nil, mapUpstream("Create", err)
	}

	s.logger.Info("Create: created reservation id=%s for employee=%s at %s",
		created.ID, employeeID, created.Date.In(s.loc).Format(time.RFC3339))
	resp := models.FromDomainReservation(created, s.loc)
	return &resp, nil
}

// Update частично обновляет бронирование
// При смене времени или мастера проверяется точное совпадение с другими бронированиями мастера
func (s *Service) Update(ctx context.Context, sess *reservationapi.Session, id string, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	if err := validateUpdate(id, req); err != nil {
		s.logger.Warn("Update: validation failed for reservation id=%s: %v", id, err)
		return nil, err
	}

	all, err := s.api.ListReservations(ctx, domain.ReservationFilter{})
	if err != nil {
		s.logger.Error("Update: failed to list reservations: %v", err)
		return nil, mapUpstream("Update", err)
	}

	current := findByID(all, id)
	if current == nil {
		s.logger.Warn("Update: reservation id=%s not found", id)
		return nil, ErrReservationNotFound
	}

	// конфликт проверяется при любом редактировании, не только при смене времени или мастера
	employeeID := current.EmployeeID
	if req.EmployeeID != nil {
		employeeID = *req.EmployeeID
	}
	at := current.Date
	if req.Date != nil {
		at = *req.Date
	}
	if hasExact(all, id, employeeID, at) {
		s.logger.Warn("Update: employee=%s already booked at %s", employeeID, at.In(s.loc).Format(time.RFC3339))
		return nil, ErrSlotTaken
	}

	updated, err := s.api.UpdateReservation(ctx, sess, id, req.ToDomain())
	if err != nil {
		s.logger.Error("Update: failed to update reservation id=%s: %v", id, err)
		return nil, mapUpstream("Update", err)
	}

	s.logger.Info("Update: updated reservation id=%s", id)
	resp := models.FromDomainReservation(updated, s.loc)
	return &resp, nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, sess *reservationapi.Session, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if err := s.api.DeleteReservation(ctx, sess, id); err != nil {
		s.logger.Error("Delete: failed to delete reservation id=%s: %v", id, err)
		return mapUpstream("Delete", err)
	}

	s.logger.Info("Delete: deleted reservation id=%s", id)
	return nil
}

// Вспомогательные методы

// groupByEmployee группирует по мастеру, группа "без мастера" первая
// Прошедшие бронирования идут от новых к старым
func (s *Service) groupByEmployee(list []domain.Reservation, names map[string]string, newestFirst bool) []models.EmployeeGroup {
	sort.SliceStable(list, func(i, j int) bool {
		if newestFirst {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].Date.Before(list[j].Date)
	})

	groups := make([]models.EmployeeGroup, 0)
	index := make(map[string]int)
	for i := range list {
		r := &list[i]
		key := r.EmployeeID
		if _, ok := index[key]; !ok {
			index[key] = len(groups)
			groups = append(groups, models.EmployeeGroup{
				EmployeeID:   r.EmployeeID,
				EmployeeName: employeeName(r, names),
				Reservations: []models.ReservationResponse{},
			})
		}
		g := &groups[index[key]]
		g.Reservations = append(g.Reservations, models.FromDomainReservation(r, s.loc))
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if (groups[i].EmployeeID == "") != (groups[j].EmployeeID == "") {
			return groups[i].EmployeeID == ""
		}
		return groups[i].EmployeeName < groups[j].EmployeeName
	})
	return groups
}

func employeeName(r *domain.Reservation, names map[string]string) string {
	if r.IsUnassigned() {
		return domain.UnassignedEmployeeName
	}
	if n, ok := names[r.EmployeeID]; ok {
		return n
	}
	if r.EmployeeName != "" {
		return r.EmployeeName
	}
	return domain.UnassignedEmployeeName
}

func findNear(list []domain.Reservation, at time.Time, window time.Duration) *domain.Reservation {
	for i := range list {
		d := list[i].Date.Sub(at)
		if d < 0 {
			d = -d
		}
		if d < window {
			return &list[i]
		}
	}
	return nil
}

func hasExact(list []domain.Reservation, excludeID, employeeID string, at time.Time) bool {
	for i := range list {
		r := &list[i]
		if r.ID != excludeID && r.EmployeeID == employeeID && r.Date.Equal(at) {
			return true
		}
	}
	return false
}

func findByID(list []domain.Reservation, id string) *domain.Reservation {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

func mapUpstream(op string, err error) error {
	switch {
	case errors.Is(err, reservationapi.ErrNotFound):
		return ErrReservationNotFound
	case errors.Is(err, reservationapi.ErrConflict):
		return ErrSlotTaken
	case errors.Is(err, reservationapi.ErrUnauthorized):
		return ErrUnauthorized
	default:
		return fmt.Errorf("%w: %s - reservation api error: %v", ErrInternal, op, err)
	}
}

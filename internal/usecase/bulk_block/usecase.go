package bulk_block

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/barber-frontdesk/internal/availability"
	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
)

const defaultMaxParallel = 4

// UseCase массовая блокировка слотов мастера заглушками __BLOCK__
type UseCase struct {
	api         ReservationAPI
	audit       AuditRepository
	txManager   TxManager
	obs         Observer
	hours       domain.BusinessHours
	loc         *time.Location
	maxParallel int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// audit и txManager могут быть nil, тогда журнал не пишется
func NewUseCase(
	api ReservationAPI,
	audit AuditRepository,
	txManager TxManager,
	hours domain.BusinessHours,
	loc *time.Location,
	maxParallel int,
	logger Logger,
) *UseCase {
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		api:         api,
		audit:       audit,
		txManager:   txManager,
		hours:       hours,
		loc:         loc,
		maxParallel: maxParallel,
		logger:      logger,
	}
}

// WithObserver включает метрики
func (uc *UseCase) WithObserver(obs Observer) *UseCase {
	uc.obs = obs
	return uc
}

// Execute блокирует выбранные слоты
// Неизвестные слоты пропускаются. Уже занятые считаются неудачными без запроса, остальные создаются параллельно.
// Ошибка отдельного слота не прерывает остальные и ничего не откатывает
func (uc *UseCase) Execute(ctx context.Context, sess *reservationapi.Session, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BulkBlock: validation failed: %v", err)
		return nil, err
	}

	day := domain.StartOfDay(req.Day, uc.loc)
	employeeID := req.EmployeeID
	filter := domain.ReservationFilter{Day: &day, EmployeeID: &employeeID}

	// 2. Текущие бронирования мастера на день
	reservations, err := uc.api.ListReservations(ctx, filter)
	if err != nil {
		uc.logger.Error("BulkBlock: failed to list reservations for %s: %v", day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// 3. Отсеиваем неизвестные слоты, занятые сразу помечаем неудачными
	daySlots := availability.GenerateFor(day, uc.hours, uc.loc)
	items, pending := uc.partition(req.Slots, daySlots, employeeID, reservations)

	// 4. Параллельно создаём заглушки
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.maxParallel)
	for _, i := range pending {
		i := i
		g.Go(func() error {
			created, err := uc.api.CreateReservation(gctx, sess, domain.NewBlockReservation(employeeID, items[i].Slot))
			if err != nil {
				items[i].Error = err.Error()
				// ошибка слота не отменяет остальные запросы
				return nil
			}
			items[i].OK = true
			items[i].ReservationID = created.ID
			return nil
		})
	}
	_ = g.Wait()

	resp := &Response{
		BatchID:    uuid.NewString(),
		EmployeeID: employeeID,
		Day:        day,
		Items:      items,
	}
	for _, it := range items {
		switch {
		case it.Skipped:
			resp.Skipped++
		case it.OK:
			resp.Blocked++
		default:
			resp.Failed++
		}
	}

	uc.observe(resp)
	uc.writeAudit(ctx, resp, len(req.Slots))

	// 5. Пересчитываем доступность
	after, err := uc.api.ListReservations(ctx, filter)
	if err != nil {
		uc.logger.Warn("BulkBlock: failed to refresh availability: %v", err)
		resp.Availability = []domain.Slot{}
		resp.Status = availability.Status(nil, err)
	} else {
		resp.Availability = availability.Resolve(daySlots, employeeID, after)
		resp.Status = availability.Status(resp.Availability, nil)
	}

	uc.logger.Info("BulkBlock: batch=%s employee=%s date=%s blocked=%d failed=%d skipped=%d",
		resp.BatchID, employeeID, day.Format(domain.DateFormat), resp.Blocked, resp.Failed, resp.Skipped)

	return resp, nil
}

// partition возвращает позиции по уникальным слотам в порядке времени и индексы тех, что нужно создать
func (uc *UseCase) partition(
	requested []time.Time,
	daySlots []time.Time,
	employeeID string,
	reservations []domain.Reservation,
) ([]domain.BlockItem, []int) {
	seen := make(map[int64]struct{}, len(requested))
	unique := make([]time.Time, 0, len(requested))
	for _, at := range requested {
		key := at.UnixMilli()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, at)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Before(unique[j]) })

	items := make([]domain.BlockItem, len(unique))
	pending := make([]int, 0, len(unique))
	for i, at := range unique {
		items[i] = domain.BlockItem{Slot: at.In(uc.loc)}
		switch {
		case !availability.Contains(daySlots, at):
			items[i].Skipped = true
			items[i].Error = reasonUnknownSlot
		case !availability.IsFree(at, employeeID, reservations):
			// повторная заглушка задвоила бы слот, поэтому запрос не отправляем
			items[i].Error = reasonBooked
		default:
			pending = append(pending, i)
		}
	}
	return items, pending
}

// writeAudit пишет пачку в журнал. Ошибка журнала только логируется
func (uc *UseCase) writeAudit(ctx context.Context, resp *Response, requested int) {
	if uc.audit == nil || uc.txManager == nil {
		return
	}

	batch := &domain.BlockBatch{
		ID:         resp.BatchID,
		EmployeeID: resp.EmployeeID,
		Day:        resp.Day,
		Requested:  requested,
		Succeeded:  resp.Blocked,
		Failed:     resp.Failed,
		Skipped:    resp.Skipped,
		Items:      resp.Items,
	}

	// блокировки уже созданы, журнал пишем даже если клиент отключился
	auditCtx := context.WithoutCancel(ctx)
	err := uc.txManager.Do(auditCtx, func(txCtx context.Context) error {
		if err := uc.audit.CreateBatch(txCtx, batch); err != nil {
			return err
		}
		return uc.audit.AddItems(txCtx, batch.ID, batch.Items)
	})
	if err != nil {
		uc.logger.Error("BulkBlock: failed to write audit for batch=%s: %v", batch.ID, err)
	}
}

func (uc *UseCase) observe(resp *Response) {
	if uc.obs == nil {
		return
	}
	uc.obs.AddBlockedSlots(outcomeBlocked, resp.Blocked)
	uc.obs.AddBlockedSlots(outcomeFailed, resp.Failed)
	uc.obs.AddBlockedSlots(outcomeSkipped, resp.Skipped)
}

package booking_flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barber-frontdesk/internal/availability"
	"github.com/m04kA/barber-frontdesk/internal/domain"
	flowRepo "github.com/m04kA/barber-frontdesk/internal/infra/storage/flow"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/pkg/ptr"
)

// Сообщения, которые видит клиент в LastError
const (
	msgSlotTaken   = "slot just taken"
	msgInvalidCode = "invalid verification code"
)

// Config параметры сценария
type Config struct {
	Hours   domain.BusinessHours
	Loc     *time.Location
	Service string // значение service у бронирований с сайта
}

// UseCase сценарий онлайн-записи: день → мастер → слот → контакт → код → бронирование
// Доступность слота перепроверяется дважды: перед отправкой кода и перед созданием бронирования
type UseCase struct {
	repo         FlowRepository
	api          ReservationAPI
	limiter      CodeLimiter
	cfg          Config
	obs          Observer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo FlowRepository,
	api ReservationAPI,
	limiter CodeLimiter,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.Loc == nil {
		cfg.Loc = time.UTC
	}
	return &UseCase{
		repo:         repo,
		api:          api,
		limiter:      limiter,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithObserver включает метрики
func (uc *UseCase) WithObserver(obs Observer) *UseCase {
	uc.obs = obs
	return uc
}

// Start создает новую сессию в состоянии selecting_date
func (uc *UseCase) Start(ctx context.Context) (*View, error) {
	now := uc.timeProvider.Now()
	s := &domain.FlowSession{
		ID:        uuid.NewString(),
		State:     domain.FlowSelectingDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("BookingFlow: started flow=%s", s.ID)
	return &View{Session: s}, nil
}

// Get возвращает сессию с актуальной доступностью выбранного дня и мастера
func (uc *UseCase) Get(ctx context.Context, id string) (*View, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, s), nil
}

// SelectDate выбирает день. Выбранный слот сбрасывается
func (uc *UseCase) SelectDate(ctx context.Context, id string, date time.Time) (*View, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireSelectable(s); err != nil {
		return nil, err
	}
	if err := validateDate(date, uc.timeProvider.Now(), uc.cfg.Loc); err != nil {
		return nil, err
	}

	day := domain.StartOfDay(date, uc.cfg.Loc)
	s.Day = &day
	s.ClearSlot()
	s.LastError = ""
	if s.EmployeeID != "" {
		s.State = domain.FlowSelectingSlot
	} else {
		s.State = domain.FlowSelectingEmployee
	}

	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}
	return uc.view(ctx, s), nil
}

// SelectEmployee выбирает мастера. Мастер должен существовать, выбранный слот сбрасывается
func (uc *UseCase) SelectEmployee(ctx context.Context, id, employeeID string) (*View, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireSelectable(s); err != nil {
		return nil, err
	}
	if s.Day == nil {
		return nil, fmt.Errorf("%w: select a date first", ErrInvalidState)
	}

	employees, err := uc.api.ListEmployees(ctx)
	if err != nil {
		uc.logger.Error("BookingFlow: flow=%s failed to list employees: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if !containsEmployee(employees, employeeID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmployeeNotFound, employeeID)
	}

	s.EmployeeID = employeeID
	s.ClearSlot()
	s.LastError = ""
	s.State = domain.FlowSelectingSlot

	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}
	return uc.view(ctx, s), nil
}

// SelectSlot выбирает слот. Слот должен быть одним из слотов дня, не в прошлом и свободным
func (uc *UseCase) SelectSlot(ctx context.Context, id string, start time.Time) (*View, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireSelectable(s); err != nil {
		return nil, err
	}
	if s.Day == nil || s.EmployeeID == "" {
		return nil, fmt.Errorf("%w: select date and employee first", ErrInvalidState)
	}

	if !availability.Contains(availability.GenerateFor(*s.Day, uc.cfg.Hours, uc.cfg.Loc), start) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSlot, start.Format(time.RFC3339))
	}
	if start.Before(uc.timeProvider.Now()) {
		return nil, fmt.Errorf("%w: slot %s is in the past", domain.ErrInvalidInput, start.In(uc.cfg.Loc).Format(domain.TimeFormat))
	}

	free, err := uc.isFree(ctx, s.EmployeeID, start)
	if err != nil {
		uc.logger.Error("BookingFlow: flow=%s failed to check slot: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if !free {
		return nil, ErrSlotTaken
	}

	slot := start
	s.Slot = &slot
	s.LastError = ""
	s.State = domain.FlowEnteringContact

	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}
	return uc.view(ctx, s), nil
}

// SendCode проверяет форму, перепроверяет слот (#1) и запрашивает код подтверждения
func (uc *UseCase) SendCode(ctx context.Context, id, name, contact string) (*View, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireState(s, domain.FlowEnteringContact, domain.FlowCodeSent); err != nil {
		return nil, err
	}

	channel, normalized, err := validateContactForm(s, name, contact)
	if err != nil {
		return nil, err
	}
	if uc.limiter != nil && !uc.limiter.Allow(normalized) {
		uc.logger.Warn("BookingFlow: flow=%s code rate limit for %s", id, channel)
		return nil, domain.ErrTooManyCodes
	}

	prev := s.State

	// перепроверка #1: слот могли занять, пока клиент заполнял форму
	free, err := uc.isFree(ctx, s.EmployeeID, *s.Slot)
	if err != nil {
		return nil, uc.fail(ctx, s, prev, "SendCode: recheck", err)
	}
	if !free {
		return nil, uc.slotTaken(ctx, s)
	}

	if err := uc.api.StartVerification(ctx, channel, normalized); err != nil {
		return nil, uc.fail(ctx, s, prev, "SendCode: start verification", err)
	}

	now := uc.timeProvider.Now()
	s.CustomerName = strings.TrimSpace(name)
	s.Contact = normalized
	s.Channel = channel
	s.CodeSentAt = &now
	s.LastError = ""
	s.State = domain.FlowCodeSent

	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("BookingFlow: flow=%s code sent via %s", id, channel)
	return uc.view(ctx, s), nil
}

// Verify подтверждает код, перепроверяет слот (#2) и создает бронирование
func (uc *UseCase) Verify(ctx context.Context, id, code string) (*View, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireState(s, domain.FlowCodeSent); err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrInvalidInput)
	}

	if err := uc.api.ConfirmVerification(ctx, s.Channel, s.Contact, code); err != nil {
		if errors.Is(err, reservationapi.ErrInvalidCode) {
			s.LastError = msgInvalidCode
			if saveErr := uc.save(ctx, s); saveErr != nil {
				return nil, saveErr
			}
			return nil, ErrInvalidCode
		}
		return nil, uc.fail(ctx, s, domain.FlowCodeSent, "Verify: confirm code", err)
	}

	s.State = domain.FlowBooking
	s.LastError = ""
	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}

	// код использован: после сбоя клиент возвращается к вводу контакта
	const resume = domain.FlowEnteringContact

	// перепроверка #2 прямо перед созданием
	free, err := uc.isFree(ctx, s.EmployeeID, *s.Slot)
	if err != nil {
		return nil, uc.fail(ctx, s, resume, "Verify: recheck", err)
	}
	if !free {
		return nil, uc.slotTaken(ctx, s)
	}

	created, err := uc.api.CreateReservation(ctx, nil, uc.reservationFor(s))
	if err != nil {
		// 409 от API: гонка между перепроверкой и созданием
		if errors.Is(err, reservationapi.ErrConflict) {
			return nil, uc.slotTaken(ctx, s)
		}
		return nil, uc.fail(ctx, s, resume, "Verify: create reservation", err)
	}

	s.ReservationID = created.ID
	s.State = domain.FlowConfirmed
	s.ResetContact()
	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}

	uc.observe(resultConfirmed)
	uc.logger.Info("BookingFlow: flow=%s confirmed reservation=%s employee=%s at %s",
		id, created.ID, s.EmployeeID, s.Slot.In(uc.cfg.Loc).Format(time.RFC3339))
	return uc.view(ctx, s), nil
}

// Retry возвращает сессию из failed в состояние до сбоя
func (uc *UseCase) Retry(ctx context.Context, id string) (*View, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireState(s, domain.FlowFailed); err != nil {
		return nil, err
	}

	s.State = s.ResumeState
	if s.State == "" {
		s.State = domain.FlowSelectingDate
	}
	s.ResumeState = ""
	s.LastError = ""

	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}
	return uc.view(ctx, s), nil
}

func (uc *UseCase) load(ctx context.Context, id string) (*domain.FlowSession, error) {
	s, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, flowRepo.ErrNotFound) {
			return nil, ErrFlowNotFound
		}
		uc.logger.Error("BookingFlow: failed to load flow=%s: %v", id, err)
		return nil, fmt.Errorf("%w: load flow: %v", ErrInternal, err)
	}
	return s, nil
}

func (uc *UseCase) save(ctx context.Context, s *domain.FlowSession) error {
	s.UpdatedAt = uc.timeProvider.Now()
	if err := uc.repo.Save(ctx, s); err != nil {
		uc.logger.Error("BookingFlow: failed to save flow=%s: %v", s.ID, err)
		return fmt.Errorf("%w: save flow: %v", ErrInternal, err)
	}
	return nil
}

// slotTaken сбрасывает сессию к выбору слота с сообщением "slot just taken"
func (uc *UseCase) slotTaken(ctx context.Context, s *domain.FlowSession) error {
	uc.logger.Warn("BookingFlow: flow=%s slot %s of employee %s just taken",
		s.ID, s.Slot.In(uc.cfg.Loc).Format(domain.TimeFormat), s.EmployeeID)

	s.ClearSlot()
	s.State = domain.FlowSelectingSlot
	s.LastError = msgSlotTaken
	uc.observe(resultSlotTaken)

	if err := uc.save(ctx, s); err != nil {
		return err
	}
	return ErrSlotTaken
}

// fail переводит сессию в failed, сохраняя выбор для Retry
func (uc *UseCase) fail(ctx context.Context, s *domain.FlowSession, resume domain.FlowState, step string, cause error) error {
	uc.logger.Error("BookingFlow: flow=%s %s failed: %v", s.ID, step, cause)

	s.Fail(resume, ErrUpstream.Error())
	uc.observe(resultFailed)

	// сохраняем в фоне от отмены запроса, иначе отменённый клиентом запрос потеряет состояние
	if err := uc.save(context.WithoutCancel(ctx), s); err != nil {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUpstream, cause)
}

func (uc *UseCase) isFree(ctx context.Context, employeeID string, at time.Time) (bool, error) {
	day := domain.StartOfDay(at, uc.cfg.Loc)
	reservations, err := uc.api.ListReservations(ctx, domain.ReservationFilter{Day: &day, EmployeeID: &employeeID})
	if err != nil {
		return false, err
	}
	return availability.IsFree(at, employeeID, reservations), nil
}

func (uc *UseCase) reservationFor(s *domain.FlowSession) domain.Reservation {
	r := domain.Reservation{
		CustomerName: s.CustomerName,
		Service:      uc.cfg.Service,
		Date:         *s.Slot,
		EmployeeID:   s.EmployeeID,
	}
	switch s.Channel {
	case domain.ChannelEmail:
		r.Email = ptr.Ptr(s.Contact)
	case domain.ChannelPhone:
		r.Phone = ptr.Ptr(s.Contact)
	}
	return r
}

// view добавляет к сессии доступность, если выбраны день и мастер
// Ошибка загрузки не ломает ответ: Availability приходит со статусом error
func (uc *UseCase) view(ctx context.Context, s *domain.FlowSession) *View {
	v := &View{Session: s}
	if s.Day == nil || s.EmployeeID == "" {
		return v
	}

	employeeID := s.EmployeeID
	reservations, err := uc.api.ListReservations(ctx, domain.ReservationFilter{Day: s.Day, EmployeeID: ptr.Ptr(employeeID)})
	if err != nil {
		uc.logger.Warn("BookingFlow: flow=%s availability unavailable: %v", s.ID, err)
		v.Availability = &Availability{Status: domain.AvailabilityError, Slots: []domain.Slot{}, AM: []domain.Slot{}, PM: []domain.Slot{}}
		return v
	}

	slots := availability.Resolve(availability.GenerateFor(*s.Day, uc.cfg.Hours, uc.cfg.Loc), employeeID, reservations)
	am, pm := availability.SplitAMPM(slots)
	v.Availability = &Availability{Status: availability.Status(slots, nil), Slots: slots, AM: am, PM: pm}
	return v
}

func (uc *UseCase) observe(result string) {
	if uc.obs != nil {
		uc.obs.IncBookingFlow(result)
	}
}

func containsEmployee(employees []domain.Employee, id string) bool {
	for _, e := range employees {
		if e.ID == id {
			return true
		}
	}
	return false
}

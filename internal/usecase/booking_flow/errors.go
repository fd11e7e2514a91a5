package booking_flow

import (
	"errors"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

var (
	// ErrSlotTaken слот заняли между выбором и подтверждением
	ErrSlotTaken = domain.ErrSlotTaken

	// ErrInvalidState операция недоступна в текущем состоянии
	ErrInvalidState = domain.ErrInvalidState

	// ErrFlowNotFound сессия не найдена или истекла
	ErrFlowNotFound = domain.ErrFlowNotFound

	// ErrInvalidCode неверный код подтверждения, сессия остаётся в code_sent
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrUpstream API бронирований недоступно или ответило ошибкой, сессия переведена в failed
	ErrUpstream = errors.New("booking service temporarily unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

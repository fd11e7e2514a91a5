package reservations

import (
	"errors"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrSlotTaken у мастера уже есть бронирование на это время
	ErrSlotTaken = domain.ErrSlotTaken

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnauthorized токен администратора отклонён API бронирований
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

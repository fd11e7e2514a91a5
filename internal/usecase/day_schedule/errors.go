package day_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при невалидных входных данных
	ErrInvalidInput = errors.New("usecase: invalid input")

	// ErrUpstream не удалось загрузить мастеров или бронирования
	ErrUpstream = errors.New("usecase: reservation service unavailable")
)

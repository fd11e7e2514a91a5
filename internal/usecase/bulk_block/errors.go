package bulk_block

import "errors"

var (
	// ErrInvalidInput возвращается при невалидных входных данных
	ErrInvalidInput = errors.New("usecase: invalid input")

	// ErrUpstream не удалось загрузить бронирования дня
	ErrUpstream = errors.New("usecase: reservation service unavailable")
)

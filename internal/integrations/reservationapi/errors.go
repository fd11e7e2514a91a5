package reservationapi

import "errors"

var (
	// ErrTransport сеть недоступна, таймаут или запрос отменён
	ErrTransport = errors.New("reservationapi client: transport error")

	// ErrUnexpectedStatus ответ не 2xx без отдельной категории
	ErrUnexpectedStatus = errors.New("reservationapi client: unexpected status")

	// ErrNotFound сущность не найдена (404)
	ErrNotFound = errors.New("reservationapi client: not found")

	// ErrConflict слот уже занят (409)
	ErrConflict = errors.New("reservationapi client: conflict")

	// ErrUnauthorized токен администратора отсутствует или истёк (401/403)
	ErrUnauthorized = errors.New("reservationapi client: unauthorized")

	// ErrInvalidCode неверный код подтверждения
	ErrInvalidCode = errors.New("reservationapi client: invalid verification code")

	// ErrInvalidResponse тело ответа не удалось разобрать
	ErrInvalidResponse = errors.New("reservationapi client: invalid response")

	// ErrInternal ошибка построения запроса
	ErrInternal = errors.New("reservationapi client: internal error")
)

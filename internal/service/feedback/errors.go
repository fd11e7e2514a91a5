package feedback

import "errors"

var (
	// ErrFeedbackNotFound возвращается, когда отзыв не найден
	ErrFeedbackNotFound = errors.New("feedback not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSpam заполнено скрытое поле формы
	ErrSpam = errors.New("feedback rejected")

	// ErrUnauthorized токен администратора отклонён
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package auth

import "errors"

var (
	// ErrInvalidInput пароль не указан
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidCredentials неверный пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package auth

import "context"

// LoginAPI вход администратора в API бронирований
type LoginAPI interface {
	Login(ctx context.Context, password string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

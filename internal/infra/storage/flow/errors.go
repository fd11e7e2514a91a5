package flow

import "errors"

var (
	// ErrNotFound сессия не найдена или истекла
	ErrNotFound = errors.New("flow.repository: session not found")

	// ErrEncode не удалось сериализовать сессию
	ErrEncode = errors.New("flow.repository: failed to encode session")

	// ErrDecode не удалось разобрать сессию
	ErrDecode = errors.New("flow.repository: failed to decode session")

	// ErrStorage ошибка хранилища
	ErrStorage = errors.New("flow.repository: storage error")
)

package reservationapi

import (
	"context"
	"net/http"
)

// Session токен администратора. Передаётся в методы клиента явно,
// глобального состояния с токеном нет
type Session struct {
	Token string
}

// NewSession создает сессию по bearer-токену
func NewSession(token string) *Session {
	return &Session{Token: token}
}

func (s *Session) authorize(req *http.Request) {
	if s == nil || s.Token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
}

type sessionKey struct{}

// WithSession кладёт сессию в контекст запроса (используется middleware)
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext достаёт сессию из контекста
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

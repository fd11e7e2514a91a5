package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/internal/service/auth"
)

const (
	msgMissingToken = "missing bearer token"
	msgExpiredToken = "token expired"
)

// Auth проверяет наличие Bearer-токена и кладёт сессию в контекст
// Подпись проверяет API бронирований. Здесь отсекаются только пустые и истёкшие JWT
func Auth(next http.Handler) http.Handler {
	return AuthWithClock(time.Now)(next)
}

// AuthWithClock как Auth, но с явным источником времени (для тестов)
func AuthWithClock(now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			if auth.Expired(token, now()) {
				handlers.RespondUnauthorized(w, msgExpiredToken)
				return
			}

			ctx := reservationapi.WithSession(r.Context(), reservationapi.NewSession(token))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

package handlers

import (
	"net/http"

	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
)

// Session сессия администратора, положенная в контекст middleware.Auth
// nil для публичных маршрутов
func Session(r *http.Request) *reservationapi.Session {
	s, ok := reservationapi.SessionFromContext(r.Context())
	if !ok {
		return nil
	}
	return s
}

package kiosk_board

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/m04kA/barber-frontdesk/internal/api/handlers"
	"github.com/m04kA/barber-frontdesk/internal/kiosk"
)

const msgUnavailable = "board not available yet"

type Handler struct {
	board       Board
	subscribers Subscribers
	upgrader    websocket.Upgrader
	logger      Logger
}

// NewHandler allowedOrigins пустой - принимаются любые Origin (экраны в локальной сети салона)
func NewHandler(board Board, subscribers Subscribers, allowedOrigins []string, logger Logger) *Handler {
	h := &Handler{
		board:       board,
		subscribers: subscribers,
		logger:      logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

// Board GET /api/v1/kiosk/board
// Отдаёт последний снимок. Если опросов ещё не было (нет подключённых экранов), снимок строится сразу
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	b := h.board.Current()
	if b == nil {
		fresh, err := h.board.Refresh(r.Context())
		if fresh == nil {
			h.logger.Error("GET /kiosk/board - Failed to build board: %v", err)
			handlers.RespondBadGateway(w, msgUnavailable)
			return
		}
		b = fresh
	}
	handlers.RespondJSON(w, http.StatusOK, kiosk.NewPayload(b))
}

// Subscribe GET /api/v1/kiosk/ws
// Блокируется, пока экран подключён
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.logger.Warn("GET /kiosk/ws - Upgrade failed: %v", err)
		return
	}
	h.logger.Info("GET /kiosk/ws - Screen connected from %s", r.RemoteAddr)
	h.subscribers.Serve(conn)
	h.logger.Info("GET /kiosk/ws - Screen disconnected from %s", r.RemoteAddr)
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

package kiosk_board

import (
	"context"

	"github.com/gorilla/websocket"

	kioskBoard "github.com/m04kA/barber-frontdesk/internal/usecase/kiosk_board"
)

type Board interface {
	Refresh(ctx context.Context) (*kioskBoard.Board, error)
	Current() *kioskBoard.Board
}

// Subscribers хаб экранов табло
type Subscribers interface {
	Serve(conn *websocket.Conn)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

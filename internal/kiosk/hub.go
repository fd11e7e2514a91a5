package kiosk

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	sendBufferSize = 4
)

// Hub подписчики табло (экраны в салоне)
// Рассылка не блокируется: медленному клиенту сообщение не доставляется
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	onChange func(n int)
	closed   bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

// NewHub создает хаб. onChange вызывается с новым числом подписчиков
func NewHub(onChange func(n int)) *Hub {
	return &Hub{clients: make(map[*client]struct{}), onChange: onChange}
}

// Serve обслуживает соединение до его закрытия. greeting отправляется первым, если не nil
func (h *Hub) Serve(conn *websocket.Conn, greeting []byte) {
	c := &client{conn: conn, send: make(chan []byte, sendBufferSize)}
	if greeting != nil {
		c.send <- greeting
	}

	if !h.add(c) {
		_ = conn.Close()
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.writeLoop()
	}()

	c.readLoop()
	h.remove(c)
	<-done
}

// Broadcast отправляет сообщение всем подписчикам
func (h *Hub) Broadcast(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// клиент не успевает читать
		}
	}
}

// Count число подписчиков
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close отключает всех подписчиков. Новые подключения после Close отклоняются
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		_ = c.conn.Close()
	}
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false
	}
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	h.notify(n)
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()

	c.stop()
	if ok {
		h.notify(n)
	}
}

func (h *Hub) notify(n int) {
	if h.onChange != nil {
		h.onChange(n)
	}
}

func (c *client) stop() {
	c.once.Do(func() { close(c.send) })
}

// readLoop читает только служебные кадры, чтобы заметить отключение
func (c *client) readLoop() {
	defer c.conn.Close()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				_ = c.conn.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.conn.Close()
				return
			}
		}
	}
}

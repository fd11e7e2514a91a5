package kiosk

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/barber-frontdesk/internal/usecase/kiosk_board"
	"github.com/m04kA/barber-frontdesk/pkg/poller"
)

const (
	pollerName  = "kiosk_board"
	sweeperName = "kiosk_expiry"
)

// Board источник снимков табло
type Board interface {
	Refresh(ctx context.Context) (*kiosk_board.Board, error)
	Current() *kiosk_board.Board
	Expire() (*kiosk_board.Board, bool)
	NextExpiry() (time.Time, bool)
}

// Observer метрики табло
type Observer interface {
	IncPollerTick(poller, outcome string)
	SetKioskSubscribers(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Runner опрашивает API для табло и рассылает снимки подписчикам
// Пока ни один экран не подключён, опрос стоит на паузе. Первый подключившийся экран
// снимает паузу и сразу получает свежий снимок.
// Подсветки снимаются к ближайшему сроку истечения, sweep с интервалом страхует таймер
type Runner struct {
	board  Board
	hub    *Hub
	poll   *poller.Poller
	sweep  *poller.Poller
	obs    Observer
	logger Logger

	mu          sync.Mutex
	expiryTimer *time.Timer
	stopped     bool
}

// NewRunner создает Runner с хабом подписчиков
// sweepInterval период проверки истёкших подсветок
func NewRunner(board Board, interval, sweepInterval time.Duration, obs Observer, logger Logger) *Runner {
	r := &Runner{board: board, obs: obs, logger: logger}
	r.hub = NewHub(r.subscribersChanged)

	r.poll = poller.New(pollerName, interval, r.refresh, poller.Options{
		OnError: func(err error) { logger.Warn("Kiosk: poll failed: %v", err) },
		OnTick:  r.tickObserver(pollerName),
	})
	r.sweep = poller.New(sweeperName, sweepInterval, r.expire, poller.Options{})

	// до первого подписчика опрос не нужен
	r.poll.Pause()
	r.sweep.Pause()
	return r
}

// Hub хаб подписчиков для websocket-обработчика
func (r *Runner) Hub() *Hub { return r.hub }

// Start запускает опрос
func (r *Runner) Start(ctx context.Context) {
	r.poll.Start(ctx)
	r.sweep.Start(ctx)
	r.logger.Info("Kiosk: runner started (%s, %s)", r.poll.Name(), r.sweep.Name())
}

// Stop останавливает опрос и отключает экраны
func (r *Runner) Stop() {
	r.mu.Lock()
	r.stopped = true
	if r.expiryTimer != nil {
		r.expiryTimer.Stop()
	}
	r.mu.Unlock()

	r.poll.Stop()
	r.sweep.Stop()
	r.hub.Close()
	r.logger.Info("Kiosk: runner stopped")
}

// Serve подключает экран: отправляет последний снимок и держит соединение до закрытия
func (r *Runner) Serve(conn *websocket.Conn) {
	r.hub.Serve(conn, r.Greeting())
}

// Greeting снимок для только что подключившегося экрана, nil если опросов ещё не было
func (r *Runner) Greeting() []byte {
	b := r.board.Current()
	if b == nil {
		return nil
	}
	msg, err := Encode(b)
	if err != nil {
		r.logger.Error("Kiosk: failed to encode board: %v", err)
		return nil
	}
	return msg
}

// Paused true, если опрос приостановлен
func (r *Runner) Paused() bool {
	return r.poll.Paused()
}

func (r *Runner) subscribersChanged(n int) {
	if r.obs != nil {
		r.obs.SetKioskSubscribers(n)
	}
	if n == 0 {
		r.poll.Pause()
		r.sweep.Pause()
		r.logger.Info("Kiosk: no subscribers, %s paused", r.poll.Name())
		return
	}
	if r.poll.Paused() {
		r.logger.Info("Kiosk: subscriber connected, %s resumed", r.poll.Name())
	}
	r.poll.Resume()
	r.sweep.Resume()
}

func (r *Runner) refresh(ctx context.Context) error {
	b, err := r.board.Refresh(ctx)
	if err != nil && (b == nil || errors.Is(err, context.Canceled)) {
		return err
	}
	// снимок с ошибкой тоже рассылается: экран показывает прежнюю сетку и текст ошибки
	r.publish(b)
	r.scheduleExpiry()
	return err
}

func (r *Runner) expire(context.Context) error {
	if b, changed := r.board.Expire(); changed {
		r.publish(b)
	}
	r.scheduleExpiry()
	return nil
}

// scheduleExpiry взводит таймер на ближайшее истечение подсветки или баннера
func (r *Runner) scheduleExpiry() {
	next, ok := r.board.NextExpiry()
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	if r.expiryTimer != nil {
		r.expiryTimer.Stop()
	}
	r.expiryTimer = time.AfterFunc(max(time.Until(next), 0), r.sweep.TriggerNow)
}

func (r *Runner) publish(b *kiosk_board.Board) {
	msg, err := Encode(b)
	if err != nil {
		r.logger.Error("Kiosk: failed to encode board: %v", err)
		return
	}
	r.hub.Broadcast(msg)
}

func (r *Runner) tickObserver(name string) func(outcome string) {
	return func(outcome string) {
		if r.obs != nil {
			r.obs.IncPollerTick(name, outcome)
		}
	}
}

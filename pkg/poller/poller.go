package poller

import (
	"context"
	"errors"
	"sync"
	"time"
)

// TickFunc одна итерация опроса
// ctx отменяется, если следующий тик стартовал раньше, чем завершился текущий
type TickFunc func(ctx context.Context) error

// Options необязательные хуки поллера
type Options struct {
	// OnError вызывается для ошибок тика, кроме отмены контекста
	OnError func(err error)
	// OnTick вызывается после каждого тика с исходом "ok", "error" или "cancelled"
	OnTick func(outcome string)
}

// Poller периодическая задача с паузой и немедленным запуском
// Новый тик отменяет незавершённый предыдущий (cancel-and-reschedule)
type Poller struct {
	name     string
	interval time.Duration
	tick     TickFunc
	opts     Options

	mu         sync.Mutex
	paused     bool
	started    bool
	stopped    bool
	cancelTick context.CancelFunc

	trigger chan struct{}
	stop    chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
}

// New создает поллер. interval должен быть положительным
func New(name string, interval time.Duration, tick TickFunc, opts Options) *Poller {
	if interval <= 0 {
		interval = time.Second
	}
	return &Poller{
		name:     name,
		interval: interval,
		tick:     tick,
		opts:     opts,
		trigger:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Name имя поллера (для логов и метрик)
func (p *Poller) Name() string { return p.name }

// Start запускает цикл опроса. Первый тик выполняется сразу, если поллер не на паузе
// Поллер одноразовый: повторный Start ничего не делает
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	go p.loop(ctx)
}

// Stop останавливает цикл, отменяет текущий тик и ждёт его завершения
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.started || p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	close(p.stop)
	<-p.done
}

// Pause приостанавливает опрос и отменяет тик в полёте
func (p *Poller) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.paused = true
	if p.cancelTick != nil {
		p.cancelTick()
	}
}

// Resume снимает паузу и сразу запускает тик
func (p *Poller) Resume() {
	p.mu.Lock()
	wasPaused := p.paused
	p.paused = false
	p.mu.Unlock()

	if wasPaused {
		p.TriggerNow()
	}
}

// Paused true, если опрос приостановлен
func (p *Poller) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// TriggerNow запрашивает внеочередной тик. Несколько вызовов подряд схлопываются в один
func (p *Poller) TriggerNow() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)
	defer p.wg.Wait()
	defer p.cancelInFlight()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.runTick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stop:
			return
		case <-ticker.C:
			p.runTick(ctx)
		case <-p.trigger:
			ticker.Reset(p.interval)
			p.runTick(ctx)
		}
	}
}

func (p *Poller) runTick(parent context.Context) {
	p.mu.Lock()
	if p.paused {
		p.mu.Unlock()
		return
	}
	if p.cancelTick != nil {
		p.cancelTick()
	}
	tickCtx, cancel := context.WithCancel(parent)
	p.cancelTick = cancel
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()

		err := p.tick(tickCtx)
		switch {
		case err == nil:
			p.report("ok")
		case errors.Is(err, context.Canceled) || tickCtx.Err() != nil:
			// тик отменён намеренно: следующим тиком, паузой или остановкой
			p.report("cancelled")
		default:
			p.report("error")
			if p.opts.OnError != nil {
				p.opts.OnError(err)
			}
		}
	}()
}

func (p *Poller) cancelInFlight() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancelTick != nil {
		p.cancelTick()
		p.cancelTick = nil
	}
}

func (p *Poller) report(outcome string) {
	if p.opts.OnTick != nil {
		p.opts.OnTick(outcome)
	}
}

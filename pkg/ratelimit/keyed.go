package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyedLimiter token bucket на каждый ключ (контакт, IP)
// За window ключ может потратить не больше burst попыток
type KeyedLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	idle     time.Duration
	limiters map[string]*entry
	now      func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyed создает лимитер: burst попыток, восстанавливаются за window
func NewKeyed(burst int, window time.Duration) *KeyedLimiter {
	if burst < 1 {
		burst = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &KeyedLimiter{
		limit:    rate.Every(window / time.Duration(burst)),
		burst:    burst,
		idle:     window,
		limiters: make(map[string]*entry),
		now:      time.Now,
	}
}

// Allow тратит одну попытку ключа. false - лимит исчерпан
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweepLocked(now)

	e, ok := l.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// Len число отслеживаемых ключей
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// ключ, не использовавшийся дольше окна, уже восстановил все попытки
func (l *KeyedLimiter) sweepLocked(now time.Time) {
	for k, e := range l.limiters {
		if now.Sub(e.lastSeen) > l.idle {
			delete(l.limiters, k)
		}
	}
}

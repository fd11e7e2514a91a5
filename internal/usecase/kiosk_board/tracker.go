package kiosk_board

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// Highlight подсветка нового бронирования на табло
type Highlight struct {
	ReservationID string
	Until         time.Time
}

// Banner всплывающее сообщение о новом бронировании
type Banner struct {
	ReservationID string
	Text          string
	Until         time.Time
}

// Tracker сравнивает наборы id бронирований между опросами
// Первый успешный опрос только запоминает базу: существующие бронирования не считаются новыми
type Tracker struct {
	mu         sync.Mutex
	ttl        time.Duration
	template   string
	loc        *time.Location
	now        func() time.Time
	seeded     bool
	known      map[string]struct{}
	highlights map[string]Highlight
	banners    []Banner
}

// NewTracker создает трекер. template поддерживает плейсхолдеры {name} и {time}
func NewTracker(ttl time.Duration, template string, loc *time.Location) *Tracker {
	if loc == nil {
		loc = time.UTC
	}
	return &Tracker{
		ttl:        ttl,
		template:   template,
		loc:        loc,
		now:        time.Now,
		known:      make(map[string]struct{}),
		highlights: make(map[string]Highlight),
	}
}

// Observe принимает результат опроса и возвращает бронирования, появившиеся с прошлого раза
func (t *Tracker) Observe(reservations []domain.Reservation) []domain.Reservation {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := make(map[string]struct{}, len(reservations))
	for _, r := range reservations {
		current[r.ID] = struct{}{}
	}

	if !t.seeded {
		t.seeded = true
		t.known = current
		return nil
	}

	now := t.now()
	until := now.Add(t.ttl)
	var fresh []domain.Reservation
	for _, r := range reservations {
		if _, ok := t.known[r.ID]; ok {
			continue
		}
		fresh = append(fresh, r)
		t.highlights[r.ID] = Highlight{ReservationID: r.ID, Until: until}
		t.banners = append(t.banners, Banner{ReservationID: r.ID, Text: t.bannerText(r), Until: until})
	}
	t.known = current

	return fresh
}

// Sweep удаляет истёкшие подсветки и баннеры. Возвращает true, если что-то удалено
func (t *Tracker) Sweep() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sweepLocked(t.now())
}

// Active текущие подсветки и баннеры
func (t *Tracker) Active() ([]Highlight, []Banner) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// истёкшие только отфильтровываются: удаляет их Sweep, чтобы подписчики узнали об изменении
	now := t.now()
	highlights := make([]Highlight, 0, len(t.highlights))
	for _, h := range t.highlights {
		if now.Before(h.Until) {
			highlights = append(highlights, h)
		}
	}
	sort.Slice(highlights, func(i, j int) bool { return highlights[i].ReservationID < highlights[j].ReservationID })

	banners := make([]Banner, 0, len(t.banners))
	for _, b := range t.banners {
		if now.Before(b.Until) {
			banners = append(banners, b)
		}
	}
	return highlights, banners
}

// NextExpiry ближайший момент истечения, ok=false если активных нет
func (t *Tracker) NextExpiry() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var next time.Time
	for _, b := range t.banners {
		if next.IsZero() || b.Until.Before(next) {
			next = b.Until
		}
	}
	for _, h := range t.highlights {
		if next.IsZero() || h.Until.Before(next) {
			next = h.Until
		}
	}
	return next, !next.IsZero()
}

func (t *Tracker) sweepLocked(now time.Time) bool {
	changed := false
	for id, h := range t.highlights {
		if !now.Before(h.Until) {
			delete(t.highlights, id)
			changed = true
		}
	}
	kept := t.banners[:0]
	for _, b := range t.banners {
		if now.Before(b.Until) {
			kept = append(kept, b)
		} else {
			changed = true
		}
	}
	t.banners = kept
	return changed
}

func (t *Tracker) bannerText(r domain.Reservation) string {
	return strings.NewReplacer(
		"{name}", r.CustomerName,
		"{time}", r.Date.In(t.loc).Format(domain.TimeFormat),
	).Replace(t.template)
}

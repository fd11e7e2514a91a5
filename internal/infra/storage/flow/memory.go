package flow

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// MemoryRepository хранилище сессий в памяти процесса
// Используется, когда Redis не настроен, и в тестах
type MemoryRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryRepository создает хранилище в памяти
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

// Save сохраняет сессию. Сессия сериализуется, чтобы вызывающий не делил с хранилищем указатели
func (r *MemoryRepository) Save(_ context.Context, s *domain.FlowSession) error {
	data, err := encode(s)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	r.entries[s.ID] = memoryEntry{data: data, expiresAt: r.now().Add(r.ttl)}
	return nil
}

// Get получает сессию по ID
func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.FlowSession, error) {
	r.mu.Lock()
	e, ok := r.entries[id]
	if ok && !r.now().Before(e.expiresAt) {
		delete(r.entries, id)
		ok = false
	}
	r.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}
	return decode(e.data)
}

// Delete удаляет сессию
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

// Ping всегда успешен
func (r *MemoryRepository) Ping(context.Context) error { return nil }

func (r *MemoryRepository) sweepLocked() {
	now := r.now()
	for id, e := range r.entries {
		if !now.Before(e.expiresAt) {
			delete(r.entries, id)
		}
	}
}

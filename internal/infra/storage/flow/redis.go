package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// RedisClient команды Redis, которые использует репозиторий. *redis.Client его реализует
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisRepository хранит сессии записи в Redis с TTL
// Каждое сохранение продлевает TTL. Запись "последний победил"
type RedisRepository struct {
	client RedisClient
	prefix string
	ttl    time.Duration
}

// NewRedisRepository создает репозиторий сессий в Redis
func NewRedisRepository(client RedisClient, prefix string, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, prefix: prefix, ttl: ttl}
}

// Save сохраняет сессию
func (r *RedisRepository) Save(ctx context.Context, s *domain.FlowSession) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.prefix+s.ID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set %s: %v", ErrStorage, s.ID, err)
	}
	return nil
}

// Get получает сессию по ID
func (r *RedisRepository) Get(ctx context.Context, id string) (*domain.FlowSession, error) {
	data, err := r.client.Get(ctx, r.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get %s: %v", ErrStorage, id, err)
	}
	return decode(data)
}

// Delete удаляет сессию
func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.prefix+id).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del %s: %v", ErrStorage, id, err)
	}
	return nil
}

// Ping проверка соединения (для /healthz)
func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

package flow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

type fakeRedis struct {
	data    map[string]string
	ttl     map[string]time.Duration
	failErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failErr != nil {
		return redis.NewStringResult("", f.failErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.failErr != nil {
		return redis.NewIntResult(0, f.failErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			delete(f.ttl, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Ping(context.Context) *redis.StatusCmd {
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	return redis.NewStatusResult("PONG", nil)
}

func TestRedisRepository_SaveGetDelete(t *testing.T) {
	client := newFakeRedis()
	repo := NewRedisRepository(client, "flow:", 30*time.Minute)
	ctx := context.Background()

	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	slot := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	s := &domain.FlowSession{
		ID:           "f1",
		State:        domain.FlowCodeSent,
		Day:          &day,
		EmployeeID:   "E",
		Slot:         &slot,
		CustomerName: "Max",
		Contact:      "max@example.com",
		Channel:      domain.ChannelEmail,
		ResumeState:  domain.FlowEnteringContact,
		CreatedAt:    slot.Add(-time.Hour),
		UpdatedAt:    slot.Add(-time.Minute),
	}
	require.NoError(t, repo.Save(ctx, s))

	// ключ с префиксом, TTL из настроек
	assert.Contains(t, client.data, "flow:f1")
	assert.Equal(t, 30*time.Minute, client.ttl["flow:f1"])
	assert.Contains(t, client.data["flow:f1"], `"state":"code_sent"`)

	got, err := repo.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, domain.FlowCodeSent, got.State)
	assert.Equal(t, domain.FlowEnteringContact, got.ResumeState)
	assert.Equal(t, domain.ChannelEmail, got.Channel)
	assert.Equal(t, "max@example.com", got.Contact)
	require.NotNil(t, got.Slot)
	assert.True(t, got.Slot.Equal(slot))
	require.NotNil(t, got.Day)
	assert.True(t, got.Day.Equal(day))
	assert.Nil(t, got.CodeSentAt)
	assert.True(t, got.UpdatedAt.Equal(s.UpdatedAt))

	require.NoError(t, repo.Delete(ctx, "f1"))
	_, err = repo.Get(ctx, "f1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisRepository_GetMissing(t *testing.T) {
	repo := NewRedisRepository(newFakeRedis(), "flow:", time.Minute)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisRepository_Errors(t *testing.T) {
	client := newFakeRedis()
	repo := NewRedisRepository(client, "flow:", time.Minute)
	ctx := context.Background()

	client.data["flow:bad"] = "{not json"
	_, err := repo.Get(ctx, "bad")
	assert.ErrorIs(t, err, ErrDecode)

	client.failErr = errors.New("connection refused")

	err = repo.Save(ctx, &domain.FlowSession{ID: "f1"})
	assert.ErrorIs(t, err, ErrStorage)

	_, err = repo.Get(ctx, "f1")
	assert.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, "f1")
	assert.ErrorIs(t, err, ErrStorage)

	assert.Error(t, repo.Ping(ctx))
}

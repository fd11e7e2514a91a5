package flow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

func TestMemoryRepository_SaveGet(t *testing.T) {
	repo := NewMemoryRepository(30 * time.Minute)
	ctx := context.Background()

	slot := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	s := &domain.FlowSession{
		ID:         "f1",
		State:      domain.FlowEnteringContact,
		EmployeeID: "E",
		Slot:       &slot,
		Channel:    domain.ChannelPhone,
	}
	require.NoError(t, repo.Save(ctx, s))

	// изменения после Save не видны хранилищу
	s.State = domain.FlowFailed

	got, err := repo.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, domain.FlowEnteringContact, got.State)
	assert.Equal(t, "E", got.EmployeeID)
	assert.True(t, got.Slot.Equal(slot))
	assert.Equal(t, domain.ChannelPhone, got.Channel)

	require.NoError(t, repo.Delete(ctx, "f1"))
	_, err = repo.Get(ctx, "f1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_Expiry(t *testing.T) {
	repo := NewMemoryRepository(time.Minute)
	now := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.FlowSession{ID: "f1", State: domain.FlowSelectingDate}))

	now = now.Add(59 * time.Second)
	_, err := repo.Get(ctx, "f1")
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = repo.Get(ctx, "f1")
	assert.ErrorIs(t, err, ErrNotFound)
}

package poller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPoller_FirstTickImmediately(t *testing.T) {
	var calls atomic.Int32
	p := New("test", time.Hour, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, Options{})

	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestPoller_NextTickCancelsInFlight(t *testing.T) {
	var (
		mu       sync.Mutex
		outcomes []string
	)
	started := make(chan struct{}, 4)

	p := New("test", time.Hour, func(ctx context.Context) error {
		started <- struct{}{}
		<-ctx.Done()
		return ctx.Err()
	}, Options{
		OnTick: func(outcome string) {
			mu.Lock()
			outcomes = append(outcomes, outcome)
			mu.Unlock()
		},
		OnError: func(err error) {
			t.Errorf("cancelled tick must not reach OnError: %v", err)
		},
	})

	p.Start(context.Background())
	<-started

	p.TriggerNow()
	<-started

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(outcomes) == 1 && outcomes[0] == "cancelled"
	}, time.Second, 5*time.Millisecond)

	p.Stop()
}

func TestPoller_ErrorsGoToHook(t *testing.T) {
	boom := errors.New("upstream down")
	errs := make(chan error, 1)

	p := New("test", time.Hour, func(ctx context.Context) error {
		return boom
	}, Options{
		OnError: func(err error) {
			select {
			case errs <- err:
			default:
			}
		},
	})

	p.Start(context.Background())
	defer p.Stop()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("OnError was not called")
	}
}

func TestPoller_PauseResume(t *testing.T) {
	var calls atomic.Int32
	p := New("test", 10*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, Options{})

	p.Pause()
	require.True(t, p.Paused())

	p.Start(context.Background())
	defer p.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	p.Resume()
	assert.False(t, p.Paused())
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
}

func TestPoller_StopIsIdempotent(t *testing.T) {
	p := New("test", time.Hour, func(ctx context.Context) error { return nil }, Options{})

	p.Stop()
	p.Start(context.Background())
	p.Stop()
	p.Stop()
}

func TestPoller_ContextCancelStopsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := New("test", 5*time.Millisecond, func(ctx context.Context) error { return nil }, Options{})

	p.Start(ctx)
	cancel()
	p.Stop()
}

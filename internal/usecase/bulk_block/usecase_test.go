package bulk_block

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

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/pkg/logger"
	"github.com/m04kA/barber-frontdesk/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeAPI struct {
	mu           sync.Mutex
	reservations []domain.Reservation
	failAt       map[int64]bool
	inFlight     int32
	maxInFlight  int32
	calls        int32
	seq          int
}

func (f *fakeAPI) ListReservations(context.Context, domain.ReservationFilter) ([]domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Reservation(nil), f.reservations...), nil
}

func (f *fakeAPI) CreateReservation(_ context.Context, _ *reservationapi.Session, r domain.Reservation) (*domain.Reservation, error) {
	atomic.AddInt32(&f.calls, 1)
	n := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		cur := atomic.LoadInt32(&f.maxInFlight)
		if n <= cur || atomic.CompareAndSwapInt32(&f.maxInFlight, cur, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	if f.failAt[r.Date.UnixMilli()] {
		return nil, errors.New("upstream 500")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	r.ID = "blk-" + string(rune('a'+f.seq))
	f.reservations = append(f.reservations, r)
	return &r, nil
}

type fakeAudit struct {
	batches []domain.BlockBatch
	items   map[string][]domain.BlockItem
	err     error
}

func (a *fakeAudit) CreateBatch(_ context.Context, b *domain.BlockBatch) error {
	if a.err != nil {
		return a.err
	}
	a.batches = append(a.batches, *b)
	return nil
}

func (a *fakeAudit) AddItems(_ context.Context, batchID string, items []domain.BlockItem) error {
	if a.items == nil {
		a.items = make(map[string][]domain.BlockItem)
	}
	a.items[batchID] = items
	return nil
}

type passTx struct{}

func (passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

var day = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func at(hhmm string) time.Time {
	return types.MustTimeString(hhmm).On(day, time.UTC)
}

func hours() domain.BusinessHours {
	return domain.BusinessHours{Open: types.MustTimeString("09:00"), Close: types.MustTimeString("19:00"), Step: 30}
}

func TestExecute_PartialFailure(t *testing.T) {
	api := &fakeAPI{failAt: map[int64]bool{
		at("10:00").UnixMilli(): true,
		at("12:30").UnixMilli(): true,
	}}
	audit := &fakeAudit{}
	uc := NewUseCase(api, audit, passTx{}, hours(), time.UTC, 2, logger.NewNop())

	req := &Request{
		EmployeeID: "E",
		Day:        day,
		Slots:      []time.Time{at("09:00"), at("10:00"), at("11:00"), at("12:30"), at("15:00")},
	}
	resp, err := uc.Execute(context.Background(), reservationapi.NewSession("t"), req)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Blocked)
	assert.Equal(t, 2, resp.Failed)
	assert.Equal(t, 0, resp.Skipped)
	assert.EqualValues(t, 5, api.calls)
	assert.LessOrEqual(t, atomic.LoadInt32(&api.maxInFlight), int32(2))

	for _, it := range resp.Items {
		failed := it.Slot.Equal(at("10:00")) || it.Slot.Equal(at("12:30"))
		assert.Equal(t, !failed, it.OK, it.Slot)
		if failed {
			assert.NotEmpty(t, it.Error)
		}
	}

	// созданные блокировки видны в пересчитанной доступности, упавшие слоты свободны
	booked := map[string]bool{}
	for _, s := range resp.Availability {
		if s.Booked {
			booked[s.Label] = true
		}
	}
	assert.Equal(t, map[string]bool{"09:00": true, "11:00": true, "15:00": true}, booked)

	for _, r := range api.reservations {
		assert.True(t, r.IsBlock())
	}

	require.Len(t, audit.batches, 1)
	assert.Equal(t, resp.BatchID, audit.batches[0].ID)
	assert.Equal(t, 3, audit.batches[0].Succeeded)
	assert.Len(t, audit.items[resp.BatchID], 5)
}

func TestExecute_AlreadyBookedCountAsFailed(t *testing.T) {
	api := &fakeAPI{reservations: []domain.Reservation{
		{ID: "r1", EmployeeID: "E", Date: at("10:00")},
		{ID: "r2", EmployeeID: "E", Date: at("12:30")},
	}}
	audit := &fakeAudit{}
	uc := NewUseCase(api, audit, passTx{}, hours(), time.UTC, 4, logger.NewNop())

	req := &Request{
		EmployeeID: "E",
		Day:        day,
		Slots:      []time.Time{at("09:00"), at("10:00"), at("11:00"), at("12:30"), at("15:00")},
	}
	resp, err := uc.Execute(context.Background(), reservationapi.NewSession("t"), req)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Blocked)
	assert.Equal(t, 2, resp.Failed)
	assert.Equal(t, 0, resp.Skipped)
	assert.EqualValues(t, 3, api.calls)

	require.Len(t, resp.Items, 5)
	assert.Equal(t, reasonBooked, resp.Items[1].Error)
	assert.False(t, resp.Items[1].OK)
	assert.False(t, resp.Items[1].Skipped)
	assert.Equal(t, reasonBooked, resp.Items[3].Error)

	booked := 0
	for _, s := range resp.Availability {
		if s.Booked {
			booked++
		}
	}
	assert.Equal(t, 5, booked)

	require.Len(t, audit.batches, 1)
	assert.Equal(t, 2, audit.batches[0].Failed)
}

func TestExecute_SkipsUnknownFailsBooked(t *testing.T) {
	api := &fakeAPI{reservations: []domain.Reservation{
		{ID: "r1", EmployeeID: "E", Date: at("11:00")},
		{ID: "r2", EmployeeID: "F", Date: at("12:00")},
	}}
	uc := NewUseCase(api, nil, nil, hours(), time.UTC, 0, logger.NewNop())

	req := &Request{
		EmployeeID: "E",
		Day:        day,
		Slots:      []time.Time{at("11:00"), at("11:10"), at("12:00"), at("12:00")},
	}
	resp, err := uc.Execute(context.Background(), nil, req)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Blocked)
	assert.Equal(t, 1, resp.Skipped)
	assert.Equal(t, 1, resp.Failed)
	assert.EqualValues(t, 1, api.calls)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, reasonBooked, resp.Items[0].Error)
	assert.Equal(t, reasonUnknownSlot, resp.Items[1].Error)
}

func TestExecute_AuditFailureIsLogged(t *testing.T) {
	api := &fakeAPI{}
	audit := &fakeAudit{err: errors.New("db down")}
	uc := NewUseCase(api, audit, passTx{}, hours(), time.UTC, 4, logger.NewNop())

	resp, err := uc.Execute(context.Background(), nil, &Request{EmployeeID: "E", Day: day, Slots: []time.Time{at("09:30")}})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Blocked)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeAPI{}, nil, nil, hours(), time.UTC, 4, logger.NewNop())

	_, err := uc.Execute(context.Background(), nil, &Request{Day: day, Slots: []time.Time{at("09:30")}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), nil, &Request{EmployeeID: "E", Day: day})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

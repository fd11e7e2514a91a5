package kiosk_board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newTestTracker(c *clock) *Tracker {
	tr := NewTracker(5*time.Second, "Neue Buchung: {name} um {time}", time.UTC)
	tr.now = c.Now
	return tr
}

func res(id, name string, at time.Time) domain.Reservation {
	return domain.Reservation{ID: id, CustomerName: name, EmployeeID: "E", Date: at}
}

func TestTracker_FirstPollSeedsBaseline(t *testing.T) {
	c := &clock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
	tr := newTestTracker(c)

	fresh := tr.Observe([]domain.Reservation{res("a", "Max", c.now), res("b", "Tom", c.now)})
	assert.Empty(t, fresh)

	highlights, banners := tr.Active()
	assert.Empty(t, highlights)
	assert.Empty(t, banners)
}

func TestTracker_NewReservationHighlightedAndExpires(t *testing.T) {
	c := &clock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
	tr := newTestTracker(c)
	slot := time.Date(2025, 1, 10, 11, 30, 0, 0, time.UTC)

	tr.Observe([]domain.Reservation{res("a", "Max", slot)})

	c.now = c.now.Add(15 * time.Second)
	fresh := tr.Observe([]domain.Reservation{res("a", "Max", slot), res("b", "Lena", slot)})
	require.Len(t, fresh, 1)
	assert.Equal(t, "b", fresh[0].ID)

	highlights, banners := tr.Active()
	require.Len(t, highlights, 1)
	assert.Equal(t, "b", highlights[0].ReservationID)
	assert.Equal(t, c.now.Add(5*time.Second), highlights[0].Until)
	require.Len(t, banners, 1)
	assert.Equal(t, "Neue Buchung: Lena um 11:30", banners[0].Text)

	next, ok := tr.NextExpiry()
	require.True(t, ok)
	assert.Equal(t, c.now.Add(5*time.Second), next)

	// до истечения ничего не снимается
	c.now = c.now.Add(4 * time.Second)
	assert.False(t, tr.Sweep())

	c.now = c.now.Add(time.Second)
	highlights, banners = tr.Active()
	assert.Empty(t, highlights)
	assert.Empty(t, banners)
	assert.True(t, tr.Sweep())
	assert.False(t, tr.Sweep())

	_, ok = tr.NextExpiry()
	assert.False(t, ok)
}

func TestTracker_DeletedReservationNotNew(t *testing.T) {
	c := &clock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
	tr := newTestTracker(c)

	tr.Observe([]domain.Reservation{res("a", "Max", c.now), res("b", "Tom", c.now)})
	assert.Empty(t, tr.Observe([]domain.Reservation{res("a", "Max", c.now)}))

	// повторно появившийся id снова считается новым
	assert.Len(t, tr.Observe([]domain.Reservation{res("a", "Max", c.now), res("b", "Tom", c.now)}), 1)
}

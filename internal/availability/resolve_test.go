package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/pkg/types"
)

func bookingDay(loc *time.Location) []time.Time {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, loc)
	return Generate(day, types.MustTimeString("09:30"), types.MustTimeString("19:00"), 30, loc)
}

func TestResolve_SingleReservation(t *testing.T) {
	reservations := []domain.Reservation{
		{ID: "r1", EmployeeID: "E", Date: time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)},
	}

	slots := Resolve(bookingDay(time.UTC), "E", reservations)

	require.Len(t, slots, 20)
	for _, s := range slots {
		if s.Label == "10:00" {
			assert.True(t, s.Booked)
			assert.Equal(t, "r1", s.ReservationID)
			continue
		}
		assert.False(t, s.Booked, s.Label)
	}
}

func TestResolve_ShopTimeZone(t *testing.T) {
	loc := berlin(t)
	reservations := []domain.Reservation{
		{ID: "r1", EmployeeID: "E", Date: time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)},
	}

	slots := Resolve(bookingDay(loc), "E", reservations)

	booked := make([]string, 0)
	for _, s := range slots {
		if s.Booked {
			booked = append(booked, s.Label)
		}
	}
	assert.Equal(t, []string{"11:00"}, booked)
}

func TestResolve_BookedIffExactKey(t *testing.T) {
	at := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	reservations := []domain.Reservation{
		{ID: "other-employee", EmployeeID: "F", Date: at},
		{ID: "off-by-ms", EmployeeID: "E", Date: at.Add(time.Millisecond)},
		{ID: "off-grid", EmployeeID: "E", Date: at.Add(15 * time.Minute)},
		{ID: "other-day", EmployeeID: "E", Date: at.AddDate(0, 0, 1)},
		{ID: "unassigned", EmployeeID: "", Date: at.Add(30 * time.Minute)},
	}

	for _, s := range Resolve(bookingDay(time.UTC), "E", reservations) {
		assert.False(t, s.Booked, s.Label)
	}

	unassigned := Resolve(bookingDay(time.UTC), "", reservations)
	for _, s := range unassigned {
		assert.Equal(t, s.Label == "12:30", s.Booked, s.Label)
	}
}

func TestIsFree(t *testing.T) {
	at := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	reservations := []domain.Reservation{{ID: "r1", EmployeeID: "E", Date: at}}

	assert.False(t, IsFree(at, "E", reservations))
	assert.True(t, IsFree(at, "F", reservations))
	assert.True(t, IsFree(at.Add(30*time.Minute), "E", reservations))
}

func TestSplitAMPM(t *testing.T) {
	slots := Resolve(bookingDay(time.UTC), "E", nil)

	am, pm := SplitAMPM(slots)

	assert.Equal(t, len(slots), len(am)+len(pm))
	require.NotEmpty(t, am)
	require.NotEmpty(t, pm)
	assert.Equal(t, "14:00", am[len(am)-1].Label)
	assert.Equal(t, "14:30", pm[0].Label)

	seen := make(map[string]int)
	for _, s := range am {
		seen[s.Label]++
	}
	for _, s := range pm {
		seen[s.Label]++
	}
	for label, n := range seen {
		assert.Equal(t, 1, n, label)
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, domain.AvailabilityError, Status(nil, assert.AnError))
	assert.Equal(t, domain.AvailabilityEmpty, Status(nil, nil))
	assert.Equal(t, domain.AvailabilityOK, Status([]domain.Slot{{Label: "09:30"}}, nil))
}

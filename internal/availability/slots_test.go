package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/pkg/types"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func TestGenerate_BookingDay(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	slots := Generate(day, types.MustTimeString("09:30"), types.MustTimeString("19:00"), 30, time.UTC)

	require.Len(t, slots, 20)
	assert.Equal(t, "09:30", slots[0].Format(domain.TimeFormat))
	assert.Equal(t, "19:00", slots[len(slots)-1].Format(domain.TimeFormat))
}

func TestGenerate_Properties(t *testing.T) {
	loc := berlin(t)
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, loc)

	tests := []struct {
		open, close string
		step        int
	}{
		{"09:30", "19:00", 30},
		{"08:30", "20:00", 30},
		{"09:00", "18:50", 45},
		{"00:00", "23:59", 7},
		{"10:00", "10:00", 15},
	}

	for _, tt := range tests {
		t.Run(tt.open+"-"+tt.close, func(t *testing.T) {
			open := types.MustTimeString(tt.open)
			closeAt := types.MustTimeString(tt.close)

			slots := Generate(day, open, closeAt, tt.step, loc)
			require.NotEmpty(t, slots)

			assert.Equal(t, tt.open, slots[0].Format(domain.TimeFormat))
			for i := 1; i < len(slots); i++ {
				prev := types.NewTimeString(slots[i-1])
				cur := types.NewTimeString(slots[i])
				assert.Equal(t, prev.Minutes()+tt.step, cur.Minutes())
			}

			last := types.NewTimeString(slots[len(slots)-1])
			assert.False(t, last.IsAfter(closeAt))
			next, err := last.AddMinutes(tt.step)
			if err == nil {
				assert.True(t, next.IsAfter(closeAt), "no slot fits after the last one")
			}
		})
	}
}

func TestGenerate_NoOvershoot(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	slots := Generate(day, types.MustTimeString("09:00"), types.MustTimeString("10:10"), 30, time.UTC)

	require.Len(t, slots, 3)
	assert.Equal(t, "10:00", slots[2].Format(domain.TimeFormat))
}

func TestGenerate_Degenerate(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, Generate(day, types.MustTimeString("09:00"), types.MustTimeString("19:00"), 0, time.UTC))
	assert.Empty(t, Generate(day, types.MustTimeString("19:00"), types.MustTimeString("09:00"), 30, time.UTC))
	assert.Empty(t, Generate(day, types.TimeString{}, types.MustTimeString("09:00"), 30, time.UTC))
}

func TestContains(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	slots := Generate(day, types.MustTimeString("09:30"), types.MustTimeString("11:00"), 30, time.UTC)

	assert.True(t, Contains(slots, time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)))
	assert.False(t, Contains(slots, time.Date(2025, 1, 10, 10, 15, 0, 0, time.UTC)))
	assert.False(t, Contains(slots, time.Date(2025, 1, 10, 10, 0, 0, 1e6, time.UTC)))
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, ts.Hour())
	assert.Equal(t, 30, ts.Minute())
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9h30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := MustTimeString("23:30")

	next, err := ts.AddMinutes(29)
	require.NoError(t, err)
	assert.Equal(t, "23:59", next.String())

	_, err = ts.AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	a := MustTimeString("10:00")
	b := MustTimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.True(t, a.Equal(MustTimeString("10:00")))
}

func TestTimeString_On(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	got := MustTimeString("11:00").On(day, loc)

	assert.Equal(t, time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC), got.UTC())
}

func TestTimeString_TextRoundTrip(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.UnmarshalText([]byte("19:00")))
	out, err := ts.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "19:00", string(out))

	var empty TimeString
	require.NoError(t, empty.UnmarshalText(nil))
	assert.True(t, empty.IsZero())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, "14:00", ts.String())

	assert.Error(t, ts.Scan(42))
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("17:30")

		require.NoError(t, err)
		assert.Equal(t, TimeString("17:30"), ts)
	})

	t.Run("invalid time", func(t *testing.T) {
		_, err := NewTimeStringFromString("25:99")
		assert.Error(t, err)
	})

	t.Run("missing leading zero is normalized", func(t *testing.T) {
		ts, err := NewTimeStringFromString("8:00")

		require.NoError(t, err)
		assert.Equal(t, TimeString("08:00"), ts)
	})
}

func TestTimeStringMinutes(t *testing.T) {
	ts := TimeString("17:30")

	minutes, err := ts.Minutes()

	require.NoError(t, err)
	assert.Equal(t, 17*60+30, minutes)
}

func TestTimeStringAddMinutes(t *testing.T) {
	testCases := []struct {
		name     string
		start    TimeString
		minutes  int
		expected TimeString
		wantErr  bool
	}{
		{name: "within the hour", start: "17:00", minutes: 30, expected: "17:30"},
		{name: "across the hour", start: "17:45", minutes: 30, expected: "18:15"},
		{name: "negative shift", start: "17:00", minutes: -15, expected: "16:45"},
		{name: "past midnight", start: "23:45", minutes: 30, wantErr: true},
		{name: "before day start", start: "00:00", minutes: -1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.start.AddMinutes(tc.minutes)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("17:00"))
	assert.True(t, TimeString("17:00").IsAfter("08:00"))
	assert.False(t, TimeString("17:00").IsBefore("17:00"))
}

func TestTimeStringScan(t *testing.T) {
	t.Run("string with seconds is trimmed", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("17:30:00"))
		assert.Equal(t, TimeString("17:30"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("08:15")))
		assert.Equal(t, TimeString("08:15"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 9, 5, 20, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("20:45"), ts)
	})

	t.Run("nil resets the value", func(t *testing.T) {
		ts := TimeString("17:30")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeStringValue(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		v, err := TimeString("17:30").Value()
		require.NoError(t, err)
		assert.Equal(t, "17:30", v)
	})

	t.Run("zero value maps to NULL", func(t *testing.T) {
		v, err := TimeString("").Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := TimeString("not a time").Value()
		assert.Error(t, err)
	})
}

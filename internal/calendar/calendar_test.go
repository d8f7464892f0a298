package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/pkg/types"
)

func TestLabels(t *testing.T) {
	t.Run("training grid is the 30-minute evening window", func(t *testing.T) {
		labels := Labels(domain.RegimeTraining)

		require.Len(t, labels, 8)
		assert.Equal(t, types.TimeString("17:00"), labels[0])
		assert.Equal(t, types.TimeString("20:30"), labels[7])
	})

	t.Run("match grid is the 15-minute full day", func(t *testing.T) {
		labels := Labels(domain.RegimeMatchDay)

		// 08:00..20:45 inclusive, 15-minute steps
		require.Len(t, labels, 52)
		assert.Equal(t, types.TimeString("08:00"), labels[0])
		assert.Equal(t, types.TimeString("20:45"), labels[51])
	})

	t.Run("closing time is a boundary, never a startable label", func(t *testing.T) {
		for _, regime := range []domain.Regime{domain.RegimeTraining, domain.RegimeMatchDay} {
			for _, label := range Labels(regime) {
				assert.NotEqual(t, types.TimeString("21:00"), label, "regime %s", regime)
			}
		}
	})
}

func TestSlotCount(t *testing.T) {
	testCases := []struct {
		name     string
		regime   domain.Regime
		duration int
		expected int
	}{
		{name: "training 30 minutes", regime: domain.RegimeTraining, duration: 30, expected: 1},
		{name: "training 120 minutes", regime: domain.RegimeTraining, duration: 120, expected: 4},
		{name: "match 50 minutes rounds up", regime: domain.RegimeMatchDay, duration: 50, expected: 4},
		{name: "match 60 minutes", regime: domain.RegimeMatchDay, duration: 60, expected: 4},
		{name: "match 80 minutes rounds up", regime: domain.RegimeMatchDay, duration: 80, expected: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SlotCount(tc.regime, tc.duration))
		})
	}
}

func TestSlotsSpanned(t *testing.T) {
	t.Run("run inside the window", func(t *testing.T) {
		run, err := SlotsSpanned(domain.RegimeTraining, "17:30", 3)

		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"17:30", "18:00", "18:30"}, run)
	})

	t.Run("run ending exactly at the closing boundary", func(t *testing.T) {
		run, err := SlotsSpanned(domain.RegimeTraining, "20:30", 1)

		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"20:30"}, run)
	})

	t.Run("run overshooting the closing boundary is rejected", func(t *testing.T) {
		// 60 minutes from the last training label would end at 21:30
		_, err := SlotsSpanned(domain.RegimeTraining, "20:30", 2)

		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("match run overshooting the boundary is rejected", func(t *testing.T) {
		_, err := SlotsSpanned(domain.RegimeMatchDay, "20:45", 2)

		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("start label off the grid is rejected", func(t *testing.T) {
		// 17:15 is a match label but not a training one
		_, err := SlotsSpanned(domain.RegimeTraining, "17:15", 1)

		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("non-positive count is rejected", func(t *testing.T) {
		_, err := SlotsSpanned(domain.RegimeTraining, "17:00", 0)

		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

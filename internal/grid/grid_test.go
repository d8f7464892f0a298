package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a1exks/FCP-AllocationService/internal/calendar"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/pkg/types"
)

const testDate = "2026-09-05"

func testDay() time.Time {
	d, _ := time.Parse(domain.DateFormat, testDate)
	return d
}

// juniorRecordSet builds the record set of a junior A+C match:
// 50 minutes on the 15-minute grid is 4 slots, so 2 sections x 4 slots.
func juniorRecordSet(t *testing.T, start types.TimeString) []*domain.Allocation {
	t.Helper()

	timeRun, err := calendar.SlotsSpanned(domain.RegimeMatchDay, start, 4)
	require.NoError(t, err)

	records, err := NewRecordSet(RecordSetParams{
		TeamName:  "U9 Reds",
		TeamColor: "#d32f2f",
		Date:      testDay(),
		PitchID:   "pitch1",
		Sections:  []domain.SectionID{domain.SectionA, domain.SectionC},
		TimeRun:   timeRun,
		IsGroup:   true,
	})
	require.NoError(t, err)
	return records
}

func TestNewRecordSet(t *testing.T) {
	t.Run("junior two-section match produces eight identical-group cells", func(t *testing.T) {
		records := juniorRecordSet(t, "10:00")

		require.Len(t, records, 8)
		for _, rec := range records {
			assert.Equal(t, records[0].ID, rec.ID)
			assert.Equal(t, types.TimeString("10:00"), rec.StartTime)
			assert.Equal(t, types.TimeString("10:45"), rec.EndTime)
			assert.Equal(t, 4, rec.TotalSlots)
			assert.True(t, rec.IsMultiSlot)
			assert.True(t, rec.IsPartOfGroup)
			assert.Equal(t, []domain.SectionID{domain.SectionA, domain.SectionC}, rec.GroupSections)
		}
	})

	t.Run("single-section single-slot booking is not a group", func(t *testing.T) {
		records, err := NewRecordSet(RecordSetParams{
			TeamName: "U7 Lions",
			Date:     testDay(),
			PitchID:  "pitch1",
			Sections: []domain.SectionID{domain.SectionB},
			TimeRun:  []types.TimeString{"17:00"},
		})

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.False(t, records[0].IsMultiSlot)
		assert.False(t, records[0].IsPartOfGroup)
		assert.Nil(t, records[0].GroupSections)
	})

	t.Run("multiple sections force group fields even without the flag", func(t *testing.T) {
		records, err := NewRecordSet(RecordSetParams{
			TeamName: "U9 Reds",
			Date:     testDay(),
			PitchID:  "pitch1",
			Sections: []domain.SectionID{domain.SectionA, domain.SectionC},
			TimeRun:  []types.TimeString{"10:00"},
			IsGroup:  false,
		})

		require.NoError(t, err)
		for _, rec := range records {
			assert.True(t, rec.IsPartOfGroup)
		}
	})

	t.Run("duplicate sections are rejected", func(t *testing.T) {
		_, err := NewRecordSet(RecordSetParams{
			TeamName: "U9 Reds",
			Date:     testDay(),
			PitchID:  "pitch1",
			Sections: []domain.SectionID{domain.SectionA, domain.SectionA},
			TimeRun:  []types.TimeString{"10:00"},
		})

		assert.ErrorIs(t, err, ErrInvalidRecordSet)
	})
}

func TestPlace(t *testing.T) {
	t.Run("a placed set occupies every one of its cells", func(t *testing.T) {
		g := New(domain.RegimeMatchDay, testDate)
		records := juniorRecordSet(t, "10:00")

		require.NoError(t, g.Place(records))
		assert.Equal(t, 8, g.Size())

		placed, ok := g.Lookup(domain.CellKey{
			Date:    testDate,
			Time:    "10:30",
			PitchID: "pitch1",
			Section: domain.SectionC,
		})
		require.True(t, ok)
		assert.Equal(t, records[0].ID, placed.ID)
	})

	t.Run("overlapping placements are mutually exclusive", func(t *testing.T) {
		g := New(domain.RegimeMatchDay, testDate)
		require.NoError(t, g.Place(juniorRecordSet(t, "10:00")))

		// Second set overlaps the first on section A and C at 10:45
		err := g.Place(juniorRecordSet(t, "10:45"))

		assert.ErrorIs(t, err, ErrConflict)
		// All-or-nothing: the loser left no cells behind
		assert.Equal(t, 8, g.Size())
	})

	t.Run("disjoint placements coexist", func(t *testing.T) {
		g := New(domain.RegimeMatchDay, testDate)
		require.NoError(t, g.Place(juniorRecordSet(t, "10:00")))
		require.NoError(t, g.Place(juniorRecordSet(t, "11:00")))

		assert.Equal(t, 16, g.Size())
	})
}

func TestRemove(t *testing.T) {
	t.Run("removal via any member cell removes the whole group", func(t *testing.T) {
		g := New(domain.RegimeMatchDay, testDate)
		records := juniorRecordSet(t, "10:00")
		require.NoError(t, g.Place(records))

		// Address the group through its last cell, not the first
		member, err := g.Remove(domain.CellKey{
			Date:    testDate,
			Time:    "10:45",
			PitchID: "pitch1",
			Section: domain.SectionC,
		})

		require.NoError(t, err)
		assert.Equal(t, records[0].ID, member.ID)
		assert.Equal(t, 0, g.Size())
	})

	t.Run("removing an empty cell reports not found", func(t *testing.T) {
		g := New(domain.RegimeMatchDay, testDate)

		_, err := g.Remove(domain.CellKey{
			Date:    testDate,
			Time:    "10:00",
			PitchID: "pitch1",
			Section: domain.SectionA,
		})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRehydrate(t *testing.T) {
	t.Run("round trip through storage records", func(t *testing.T) {
		g := New(domain.RegimeMatchDay, testDate)
		require.NoError(t, g.Place(juniorRecordSet(t, "10:00")))

		rehydrated, err := Rehydrate(domain.RegimeMatchDay, testDate, g.Allocations())

		require.NoError(t, err)
		assert.Equal(t, g.Size(), rehydrated.Size())
		assert.Equal(t, domain.RegimeMatchDay, rehydrated.Regime())
		assert.Equal(t, testDate, rehydrated.Date())
	})

	t.Run("two bookings claiming one cell is a corrupt snapshot", func(t *testing.T) {
		first := juniorRecordSet(t, "10:00")
		second := juniorRecordSet(t, "10:00")

		_, err := Rehydrate(domain.RegimeMatchDay, testDate, append(first, second...))

		assert.ErrorIs(t, err, ErrCorruptSnapshot)
	})
}

func TestCandidateCells(t *testing.T) {
	keys := CandidateCells(testDate, "pitch1",
		[]domain.SectionID{domain.SectionA, domain.SectionC},
		[]types.TimeString{"10:00", "10:15"})

	require.Len(t, keys, 4)
	assert.Equal(t, domain.CellKey{Date: testDate, Time: "10:00", PitchID: "pitch1", Section: domain.SectionA}, keys[0])
	assert.Equal(t, domain.CellKey{Date: testDate, Time: "10:15", PitchID: "pitch1", Section: domain.SectionC}, keys[3])
}

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
)

func fullPitch(hasGrass bool) *domain.Pitch {
	return &domain.Pitch{
		ID:           "pitch1",
		DisplayName:  "Main Pitch",
		Sections:     append([]domain.SectionID{}, domain.StandardSections...),
		HasGrassArea: hasGrass,
	}
}

func TestBracketFor(t *testing.T) {
	testCases := []struct {
		name     string
		teamName string
		expected domain.AgeBracket
	}{
		{name: "U7 prefix", teamName: "U7 Lions", expected: domain.BracketYoung},
		{name: "U6", teamName: "U6 Cubs", expected: domain.BracketYoung},
		{name: "under with space and plural", teamName: "Under 9s Red", expected: domain.BracketJunior},
		{name: "U8", teamName: "U8 Tigers", expected: domain.BracketJunior},
		{name: "bare number", teamName: "Lions 10", expected: domain.BracketMidRange},
		{name: "U13", teamName: "U13 Eagles", expected: domain.BracketMidRange},
		{name: "U14", teamName: "U14 Hawks", expected: domain.BracketSenior},
		{name: "U18", teamName: "U18 Academy", expected: domain.BracketSenior},
		{name: "no age token falls back to mid-range", teamName: "Seniors", expected: domain.BracketMidRange},
		{name: "implausibly low age falls back", teamName: "U3 Tots", expected: domain.BracketMidRange},
		{name: "lowercase token", teamName: "u12 blues", expected: domain.BracketMidRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BracketFor(tc.teamName))
		})
	}
}

func TestDurationFor(t *testing.T) {
	assert.Equal(t, 50, DurationFor(domain.BracketYoung))
	assert.Equal(t, 50, DurationFor(domain.BracketJunior))
	assert.Equal(t, 60, DurationFor(domain.BracketMidRange))
	assert.Equal(t, 80, DurationFor(domain.BracketSenior))
}

func TestChoicesFor(t *testing.T) {
	t.Run("senior bracket has exactly one full-pitch choice", func(t *testing.T) {
		choices := ChoicesFor(domain.BracketSenior, fullPitch(true))

		require.Len(t, choices, 1)
		assert.Equal(t, "Full pitch", choices[0].Label)
		assert.Equal(t, domain.StandardSections, choices[0].Sections)
	})

	t.Run("young bracket lists every section plus grass when present", func(t *testing.T) {
		choices := ChoicesFor(domain.BracketYoung, fullPitch(true))

		require.Len(t, choices, 9)
		assert.Equal(t, "A", choices[0].Label)
		assert.Equal(t, "Grass", choices[8].Label)
		assert.Equal(t, []domain.SectionID{domain.SectionGrass}, choices[8].Sections)
	})

	t.Run("young bracket omits grass on a pitch without one", func(t *testing.T) {
		choices := ChoicesFor(domain.BracketYoung, fullPitch(false))

		require.Len(t, choices, 8)
		for _, c := range choices {
			assert.NotEqual(t, "Grass", c.Label)
		}
	})

	t.Run("junior bracket pairs vertical columns", func(t *testing.T) {
		choices := ChoicesFor(domain.BracketJunior, fullPitch(false))

		require.Len(t, choices, 4)
		assert.Equal(t, "A+C", choices[0].Label)
		assert.Equal(t, []domain.SectionID{domain.SectionA, domain.SectionC}, choices[0].Sections)
	})

	t.Run("mid-range bands overlap in the catalog", func(t *testing.T) {
		choices := ChoicesFor(domain.BracketMidRange, fullPitch(false))

		require.Len(t, choices, 3)
		// C and D appear in both the first and the second band
		assert.Contains(t, choices[0].Sections, domain.SectionC)
		assert.Contains(t, choices[1].Sections, domain.SectionC)
	})

	t.Run("choices are copies, mutation does not leak into the tables", func(t *testing.T) {
		first := ChoicesFor(domain.BracketJunior, fullPitch(false))
		first[0].Sections[0] = domain.SectionH

		second := ChoicesFor(domain.BracketJunior, fullPitch(false))
		assert.Equal(t, domain.SectionA, second[0].Sections[0])
	})
}

func TestSectionsFor(t *testing.T) {
	t.Run("known label resolves to its section set", func(t *testing.T) {
		sections, err := SectionsFor(domain.BracketJunior, fullPitch(false), "E+G")

		require.NoError(t, err)
		assert.Equal(t, []domain.SectionID{domain.SectionE, domain.SectionG}, sections)
	})

	t.Run("label from another bracket is rejected", func(t *testing.T) {
		// Stale UI state: the layout belongs to the junior table
		_, err := SectionsFor(domain.BracketSenior, fullPitch(false), "A+C")

		assert.ErrorIs(t, err, ErrUnknownLayout)
	})

	t.Run("unknown label is rejected", func(t *testing.T) {
		_, err := SectionsFor(domain.BracketMidRange, fullPitch(false), "A+Z")

		assert.ErrorIs(t, err, ErrUnknownLayout)
	})
}

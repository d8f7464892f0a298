// Package layout is the pure rule engine behind match-day bookings:
// team name -> age bracket, bracket -> match duration, and the closed
// tables of legal pitch layouts per bracket. Nothing here is computed
// geometrically; the label -> section-set mapping is data.
package layout

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
)

// ErrUnknownLayout is returned when a layout label is not in the table
// of the requested bracket. Guards against stale UI state after a team
// change invalidates a previously selected label.
var ErrUnknownLayout = errors.New("layout: unknown layout label for bracket")

// LayoutChoice is one legal way a match-day booking may occupy a pitch:
// a display label and the exact set of atomic sections it expands to.
type LayoutChoice struct {
	Label    string
	Sections []domain.SectionID
}

// matchDurations is the fixed bracket -> match duration table (minutes).
// Training durations are direct user input and never consult this table.
var matchDurations = map[domain.AgeBracket]int{
	domain.BracketYoung:    50,
	domain.BracketJunior:   50,
	domain.BracketMidRange: 60,
	domain.BracketSenior:   80,
}

// juniorChoices: two-section vertical column pairs
var juniorChoices = []LayoutChoice{
	{Label: "A+C", Sections: []domain.SectionID{domain.SectionA, domain.SectionC}},
	{Label: "B+D", Sections: []domain.SectionID{domain.SectionB, domain.SectionD}},
	{Label: "E+G", Sections: []domain.SectionID{domain.SectionE, domain.SectionG}},
	{Label: "F+H", Sections: []domain.SectionID{domain.SectionF, domain.SectionH}},
}

// midRangeChoices: four-section horizontal bands. The bands overlap each
// other in the catalog; conflict detection arbitrates actual bookings.
var midRangeChoices = []LayoutChoice{
	{Label: "A+B+C+D", Sections: []domain.SectionID{domain.SectionA, domain.SectionB, domain.SectionC, domain.SectionD}},
	{Label: "C+D+E+F", Sections: []domain.SectionID{domain.SectionC, domain.SectionD, domain.SectionE, domain.SectionF}},
	{Label: "E+F+G+H", Sections: []domain.SectionID{domain.SectionE, domain.SectionF, domain.SectionG, domain.SectionH}},
}

// seniorChoices: exactly one choice spanning the whole pitch
var seniorChoices = []LayoutChoice{
	{Label: "Full pitch", Sections: append([]domain.SectionID{}, domain.StandardSections...)},
}

// ageTokenPattern matches the age number embedded in a team name:
// "U10 Lions", "Under 9s Red", "Lions 14".
var ageTokenPattern = regexp.MustCompile(`(?i)\b(?:u|under\s*)?(\d{1,2})s?\b`)

// BracketFor derives the age bracket from the age token in a team name.
// Names without a recognizable token fall back to the 10-13 bracket.
// The fallback is a deliberate policy, not an error: it yields the most
// common mid-size layouts rather than rejecting the booking.
func BracketFor(teamName string) domain.AgeBracket {
	m := ageTokenPattern.FindStringSubmatch(teamName)
	if m == nil {
		return domain.BracketMidRange
	}
	age, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.BracketMidRange
	}

	switch {
	case age <= 5:
		return domain.BracketMidRange // below the youngest league age: no usable token
	case age <= 7:
		return domain.BracketYoung
	case age <= 9:
		return domain.BracketJunior
	case age <= 13:
		return domain.BracketMidRange
	default:
		return domain.BracketSenior
	}
}

// DurationFor returns the fixed match duration of a bracket in minutes
func DurationFor(bracket domain.AgeBracket) int {
	if d, ok := matchDurations[bracket]; ok {
		return d
	}
	return matchDurations[domain.BracketMidRange]
}

// ChoicesFor returns the ordered legal layout choices of a bracket on a
// pitch. For the youngest bracket the grass overflow area is appended
// as an extra single-section choice when the pitch has one.
func ChoicesFor(bracket domain.AgeBracket, pitch *domain.Pitch) []LayoutChoice {
	switch bracket {
	case domain.BracketYoung:
		choices := make([]LayoutChoice, 0, len(pitch.Sections)+1)
		for _, s := range pitch.Sections {
			choices = append(choices, LayoutChoice{Label: string(s), Sections: []domain.SectionID{s}})
		}
		if pitch.HasGrassArea {
			choices = append(choices, LayoutChoice{Label: "Grass", Sections: []domain.SectionID{domain.SectionGrass}})
		}
		return choices
	case domain.BracketJunior:
		return cloneChoices(juniorChoices)
	case domain.BracketSenior:
		return cloneChoices(seniorChoices)
	default:
		return cloneChoices(midRangeChoices)
	}
}

// SectionsFor resolves a chosen layout label into its concrete section
// set for the bracket and pitch. A label outside the bracket's current
// table yields ErrUnknownLayout.
func SectionsFor(bracket domain.AgeBracket, pitch *domain.Pitch, label string) ([]domain.SectionID, error) {
	for _, choice := range ChoicesFor(bracket, pitch) {
		if choice.Label == label {
			out := make([]domain.SectionID, len(choice.Sections))
			copy(out, choice.Sections)
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: %q is not valid for bracket %s", ErrUnknownLayout, label, bracket)
}

func cloneChoices(src []LayoutChoice) []LayoutChoice {
	out := make([]LayoutChoice, len(src))
	for i, c := range src {
		sections := make([]domain.SectionID, len(c.Sections))
		copy(sections, c.Sections)
		out[i] = LayoutChoice{Label: c.Label, Sections: sections}
	}
	return out
}

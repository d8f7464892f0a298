package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/a1exks/FCP-AllocationService/pkg/types"
)

// Regime distinguishes the two independent booking grids.
// Conflicts are never computed across regimes; only full-facility
// occupancy reporting reads both.
type Regime string

const (
	RegimeTraining Regime = "training"
	RegimeMatchDay Regime = "match"
)

// IsValid reports whether the regime is known
func (r Regime) IsValid() bool {
	return r == RegimeTraining || r == RegimeMatchDay
}

// CellKey addresses exactly one bookable unit of the grid:
// one section of one pitch at one time label on one date.
// It is the only addressing mechanism into the grid.
type CellKey struct {
	Date    string // YYYY-MM-DD
	Time    types.TimeString
	PitchID string
	Section SectionID
}

const cellKeySeparator = "|"

// String serializes the key for interchange and cache use.
// The pipe separator cannot appear in any of the four fields, so the
// encoding round-trips without positional guessing.
func (k CellKey) String() string {
	return strings.Join([]string{k.Date, k.Time.String(), k.PitchID, string(k.Section)}, cellKeySeparator)
}

// ParseCellKey parses the serialized form produced by String.
// All four fields are required and validated.
func ParseCellKey(s string) (CellKey, error) {
	parts := strings.Split(s, cellKeySeparator)
	if len(parts) != 4 {
		return CellKey{}, fmt.Errorf("domain: cell key %q must have 4 fields, got %d", s, len(parts))
	}
	if _, err := time.Parse(DateFormat, parts[0]); err != nil {
		return CellKey{}, fmt.Errorf("domain: cell key %q has invalid date: %w", s, err)
	}
	timeLabel, err := types.NewTimeStringFromString(parts[1])
	if err != nil {
		return CellKey{}, fmt.Errorf("domain: cell key %q has invalid time: %w", s, err)
	}
	if parts[2] == "" {
		return CellKey{}, fmt.Errorf("domain: cell key %q has empty pitch id", s)
	}
	section := SectionID(parts[3])
	if !section.IsValid() {
		return CellKey{}, fmt.Errorf("domain: cell key %q has unknown section %q", s, parts[3])
	}
	return CellKey{Date: parts[0], Time: timeLabel, PitchID: parts[2], Section: section}, nil
}

// Allocation is the record stored at one grid cell. A booking spanning
// several slots or sections stores one record per cell; the shared
// fields (ID, team, times, group sections) are identical across the
// whole record set and let any single cell reconstruct the full group.
type Allocation struct {
	ID        string // stable identity of the whole booking, shared by all its cells
	TeamName  string
	TeamColor string

	Date    time.Time
	PitchID string
	Section SectionID // the section this specific cell covers

	StartTime  types.TimeString // first label of the whole booking
	EndTime    types.TimeString // last label of the whole booking (inclusive)
	TotalSlots int              // number of time labels the booking spans
	SlotIndex  int              // this cell's position within the run, 0..TotalSlots-1

	IsMultiSlot   bool
	IsPartOfGroup bool
	GroupSections []SectionID // all sections of the booking when IsPartOfGroup

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateString returns the canonical YYYY-MM-DD form of the allocation date
func (a *Allocation) DateString() string {
	return a.Date.Format(DateFormat)
}

// TimeLabel returns the time label of this specific cell,
// derived from the booking start and the cell's slot index.
func (a *Allocation) TimeLabel(stepMinutes int) (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.SlotIndex * stepMinutes)
}

// Sections returns every section the whole booking occupies
func (a *Allocation) Sections() []SectionID {
	if a.IsPartOfGroup && len(a.GroupSections) > 0 {
		out := make([]SectionID, len(a.GroupSections))
		copy(out, a.GroupSections)
		return out
	}
	return []SectionID{a.Section}
}

// CellKeyAt builds the key of this specific cell
func (a *Allocation) CellKeyAt(stepMinutes int) (CellKey, error) {
	label, err := a.TimeLabel(stepMinutes)
	if err != nil {
		return CellKey{}, err
	}
	return CellKey{
		Date:    a.DateString(),
		Time:    label,
		PitchID: a.PitchID,
		Section: a.Section,
	}, nil
}

package domain

// SectionID identifies one atomic, non-overlapping tile of a pitch.
// The alphabet is fixed: A..H laid out in two columns of four rows,
// plus the optional grass overflow area next to some pitches.
type SectionID string

const (
	SectionA     SectionID = "A"
	SectionB     SectionID = "B"
	SectionC     SectionID = "C"
	SectionD     SectionID = "D"
	SectionE     SectionID = "E"
	SectionF     SectionID = "F"
	SectionG     SectionID = "G"
	SectionH     SectionID = "H"
	SectionGrass SectionID = "grass"
)

// StandardSections is the ordered section alphabet of a full-size pitch
var StandardSections = []SectionID{
	SectionA, SectionB, SectionC, SectionD,
	SectionE, SectionF, SectionG, SectionH,
}

// IsValid reports whether s belongs to the fixed section alphabet
func (s SectionID) IsValid() bool {
	if s == SectionGrass {
		return true
	}
	for _, known := range StandardSections {
		if s == known {
			return true
		}
	}
	return false
}

// Orientation describes how a pitch is drawn; it does not affect allocation logic
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Pitch is a static catalog entry for one physical playing field.
// Immutable during a scheduling session.
type Pitch struct {
	ID           string
	DisplayName  string
	Sections     []SectionID
	HasGrassArea bool
	Orientation  Orientation
}

// HasSection reports whether the section is bookable on this pitch,
// including the grass overflow area when configured.
func (p *Pitch) HasSection(s SectionID) bool {
	if s == SectionGrass {
		return p.HasGrassArea
	}
	for _, known := range p.Sections {
		if s == known {
			return true
		}
	}
	return false
}

// SectionCount returns the number of configured sections, grass excluded.
// Grass is an overflow area and does not count towards pitch capacity.
func (p *Pitch) SectionCount() int {
	return len(p.Sections)
}

// PitchCatalog is the fixed set of pitches the facility operates
type PitchCatalog []Pitch

// ByID finds a pitch in the catalog
func (c PitchCatalog) ByID(id string) (*Pitch, bool) {
	for i := range c {
		if c[i].ID == id {
			return &c[i], true
		}
	}
	return nil, false
}

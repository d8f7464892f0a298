package domain

// Team is a catalog entry for one competing team.
// The colour is a display-time denormalization carried into allocations.
type Team struct {
	Name  string
	Color string
}

// AgeBracket is the age-derived category of a team. It governs the
// match duration and which pitch layouts the team may legally book.
type AgeBracket string

const (
	BracketYoung    AgeBracket = "6&7"
	BracketJunior   AgeBracket = "8&9"
	BracketMidRange AgeBracket = "10-13"
	BracketSenior   AgeBracket = "14+"
)

// IsValid reports whether the bracket is one of the four known categories
func (b AgeBracket) IsValid() bool {
	switch b {
	case BracketYoung, BracketJunior, BracketMidRange, BracketSenior:
		return true
	}
	return false
}

// TeamCatalog is the fixed set of teams known to the facility
type TeamCatalog []Team

// ColorOf returns the catalog colour for a team, or the default colour
// when the team is not in the catalog.
func (c TeamCatalog) ColorOf(name string) string {
	for _, t := range c {
		if t.Name == name {
			return t.Color
		}
	}
	return DefaultTeamColor
}

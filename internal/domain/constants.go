package domain

// Time and date formats shared across the service
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AppVersion is embedded into export envelopes so old backups stay identifiable
const AppVersion = "1.4.0"

// Training regime parameters: evening window, 30-minute grid
const (
	TrainingStepMinutes = 30
	TrainingOpeningTime = "17:00"
	TrainingClosingTime = "21:00"
	MinTrainingDuration = 30
	MaxTrainingDuration = 120
)

// Match-day regime parameters: full day, 15-minute grid
const (
	MatchDayStepMinutes = 15
	MatchDayOpeningTime = "08:00"
	MatchDayClosingTime = "21:00"
)

// NoonTime splits a day into AM and PM reporting periods
const NoonTime = "12:00"

// DefaultTeamColor is used for teams missing from the facility catalog
const DefaultTeamColor = "#9e9e9e"

package create_allocation

import (
	"fmt"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Regime.IsValid() {
		return fmt.Errorf("%w: unknown regime %q", ErrInvalidInput, req.Regime)
	}
	if req.TeamName == "" {
		return fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.PitchID == "" {
		return fmt.Errorf("%w: pitch id is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if req.Regime == domain.RegimeTraining {
		return validateTrainingFields(req)
	}
	return validateMatchDayFields(req)
}

// validateTrainingFields тренировка: явные секции и длительность из
// фиксированного ряда 30/60/90/120 минут
func validateTrainingFields(req *Request) error {
	if len(req.Sections) == 0 {
		return fmt.Errorf("%w: at least one section is required for training", ErrInvalidInput)
	}
	seen := make(map[domain.SectionID]bool, len(req.Sections))
	for _, s := range req.Sections {
		if !s.IsValid() {
			return fmt.Errorf("%w: unknown section %q", ErrInvalidInput, s)
		}
		if seen[s] {
			return fmt.Errorf("%w: duplicate section %q", ErrInvalidInput, s)
		}
		seen[s] = true
	}

	d := req.DurationMinutes
	if d < domain.MinTrainingDuration || d > domain.MaxTrainingDuration || d%domain.TrainingStepMinutes != 0 {
		return fmt.Errorf("%w: training duration must be one of 30/60/90/120 minutes, got %d", ErrInvalidInput, d)
	}
	if req.LayoutLabel != "" {
		return fmt.Errorf("%w: layout label is a match-day field", ErrInvalidInput)
	}
	return nil
}

// validateMatchDayFields матчевый день: только метка раскладки,
// секции и длительность выводятся правилами
func validateMatchDayFields(req *Request) error {
	if req.LayoutLabel == "" {
		return fmt.Errorf("%w: layout label is required for match day", ErrInvalidInput)
	}
	if len(req.Sections) != 0 {
		return fmt.Errorf("%w: sections are derived from the layout on match day", ErrInvalidInput)
	}
	if req.DurationMinutes != 0 {
		return fmt.Errorf("%w: match duration is derived from the team bracket", ErrInvalidInput)
	}
	return nil
}

// validateSectionsOnPitch проверяет, что все секции существуют на поле
func validateSectionsOnPitch(pitch *domain.Pitch, sections []domain.SectionID) error {
	for _, s := range sections {
		if !pitch.HasSection(s) {
			return fmt.Errorf("%w: section %q on pitch %s", ErrSectionNotOnPitch, s, pitch.ID)
		}
	}
	return nil
}

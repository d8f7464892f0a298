// Package models модели ответов сервиса бронирований
package models

import (
	"github.com/a1exks/FCP-AllocationService/internal/calendar"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/internal/layout"
)

// Cell одна занятая ячейка сетки дня
type Cell struct {
	AllocationID  string
	TeamName      string
	TeamColor     string
	PitchID       string
	Section       domain.SectionID
	TimeLabel     string
	StartTime     string
	EndTime       string
	TotalSlots    int
	SlotIndex     int
	IsMultiSlot   bool
	IsPartOfGroup bool
	GroupSections []domain.SectionID
}

// DayGridResponse снимок сетки одного дня одного режима.
// Ключ карты — сериализованный ключ ячейки.
type DayGridResponse struct {
	Date   string
	Regime domain.Regime
	Cells  map[string]Cell
}

// FromAllocation строит ячейку ответа из доменной записи
func FromAllocation(regime domain.Regime, alloc *domain.Allocation) (string, Cell, error) {
	step := calendar.StepMinutes(regime)
	key, err := alloc.CellKeyAt(step)
	if err != nil {
		return "", Cell{}, err
	}
	return key.String(), Cell{
		AllocationID:  alloc.ID,
		TeamName:      alloc.TeamName,
		TeamColor:     alloc.TeamColor,
		PitchID:       alloc.PitchID,
		Section:       alloc.Section,
		TimeLabel:     key.Time.String(),
		StartTime:     alloc.StartTime.String(),
		EndTime:       alloc.EndTime.String(),
		TotalSlots:    alloc.TotalSlots,
		SlotIndex:     alloc.SlotIndex,
		IsMultiSlot:   alloc.IsMultiSlot,
		IsPartOfGroup: alloc.IsPartOfGroup,
		GroupSections: alloc.GroupSections,
	}, nil
}

// LayoutChoice одна допустимая раскладка
type LayoutChoice struct {
	Label    string
	Sections []domain.SectionID
}

// LayoutChoicesResponse допустимые раскладки команды на поле
type LayoutChoicesResponse struct {
	TeamName        string
	Bracket         domain.AgeBracket
	DurationMinutes int
	Choices         []LayoutChoice
}

// FromLayoutChoices конвертирует результат правил раскладок
func FromLayoutChoices(teamName string, bracket domain.AgeBracket, duration int, choices []layout.LayoutChoice) *LayoutChoicesResponse {
	out := &LayoutChoicesResponse{
		TeamName:        teamName,
		Bracket:         bracket,
		DurationMinutes: duration,
		Choices:         make([]LayoutChoice, 0, len(choices)),
	}
	for _, c := range choices {
		out.Choices = append(out.Choices, LayoutChoice{Label: c.Label, Sections: c.Sections})
	}
	return out
}

// ClearDayResponse итог массового сброса дня
type ClearDayResponse struct {
	Date         string
	CellsRemoved int64
}

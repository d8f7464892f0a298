package get_day_grid

import (
	"github.com/a1exks/FCP-AllocationService/internal/service/allocations/models"
)

// CellResponse одна занятая ячейка сетки
type CellResponse struct {
	AllocationID  string   `json:"allocationId"`
	TeamName      string   `json:"teamName"`
	TeamColor     string   `json:"teamColor"`
	PitchID       string   `json:"pitchId"`
	Section       string   `json:"section"`
	TimeLabel     string   `json:"timeLabel"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	TotalSlots    int      `json:"totalSlots"`
	SlotIndex     int      `json:"slotIndex"`
	IsMultiSlot   bool     `json:"isMultiSlot"`
	IsPartOfGroup bool     `json:"isPartOfGroup"`
	GroupSections []string `json:"groupSections,omitempty"`
}

// DayGridResponse снимок сетки одного дня одного режима.
// Ключ карты — сериализованный ключ ячейки (date|time|pitch|section).
type DayGridResponse struct {
	Date   string                  `json:"date"`
	Regime string                  `json:"regime"`
	Cells  map[string]CellResponse `json:"cells"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.DayGridResponse) *DayGridResponse {
	out := &DayGridResponse{
		Date:   resp.Date,
		Regime: string(resp.Regime),
		Cells:  make(map[string]CellResponse, len(resp.Cells)),
	}
	for key, cell := range resp.Cells {
		groupSections := make([]string, 0, len(cell.GroupSections))
		for _, s := range cell.GroupSections {
			groupSections = append(groupSections, string(s))
		}
		out.Cells[key] = CellResponse{
			AllocationID:  cell.AllocationID,
			TeamName:      cell.TeamName,
			TeamColor:     cell.TeamColor,
			PitchID:       cell.PitchID,
			Section:       string(cell.Section),
			TimeLabel:     cell.TimeLabel,
			StartTime:     cell.StartTime,
			EndTime:       cell.EndTime,
			TotalSlots:    cell.TotalSlots,
			SlotIndex:     cell.SlotIndex,
			IsMultiSlot:   cell.IsMultiSlot,
			IsPartOfGroup: cell.IsPartOfGroup,
			GroupSections: groupSections,
		}
	}
	return out
}

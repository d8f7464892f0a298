package get_layout_choices

import (
	"github.com/a1exks/FCP-AllocationService/internal/service/allocations/models"
)

// LayoutChoiceResponse одна допустимая раскладка
type LayoutChoiceResponse struct {
	Label    string   `json:"label"`
	Sections []string `json:"sections"`
}

// LayoutChoicesResponse допустимые раскладки команды на поле
type LayoutChoicesResponse struct {
	TeamName        string                 `json:"teamName"`
	Bracket         string                 `json:"bracket"`
	DurationMinutes int                    `json:"durationMinutes"`
	Choices         []LayoutChoiceResponse `json:"choices"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.LayoutChoicesResponse) *LayoutChoicesResponse {
	out := &LayoutChoicesResponse{
		TeamName:        resp.TeamName,
		Bracket:         string(resp.Bracket),
		DurationMinutes: resp.DurationMinutes,
		Choices:         make([]LayoutChoiceResponse, 0, len(resp.Choices)),
	}
	for _, choice := range resp.Choices {
		sections := make([]string, 0, len(choice.Sections))
		for _, s := range choice.Sections {
			sections = append(sections, string(s))
		}
		out.Choices = append(out.Choices, LayoutChoiceResponse{
			Label:    choice.Label,
			Sections: sections,
		})
	}
	return out
}

package create_allocation

import (
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
	createAllocation "github.com/a1exks/FCP-AllocationService/internal/usecase/create_allocation"
	"github.com/a1exks/FCP-AllocationService/pkg/types"
)

// CreateAllocationRequest HTTP request model.
// Тренировочный режим принимает sections и durationMinutes,
// матчевый — layoutLabel; лишние поля игнорируются use case'ом.
type CreateAllocationRequest struct {
	Regime    string `json:"regime"`    // "training" | "match"
	TeamName  string `json:"teamName"`
	Date      string `json:"date"`      // "2026-09-05"
	PitchID   string `json:"pitchId"`
	StartTime string `json:"startTime"` // "17:30"

	Sections        []string `json:"sections,omitempty"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`

	LayoutLabel string `json:"layoutLabel,omitempty"`
}

// AllocationResponse HTTP response model
type AllocationResponse struct {
	AllocationID    string   `json:"allocationId"`
	Regime          string   `json:"regime"`
	TeamName        string   `json:"teamName"`
	TeamColor       string   `json:"teamColor"`
	Bracket         string   `json:"bracket"`
	Date            string   `json:"date"`
	PitchID         string   `json:"pitchId"`
	Sections        []string `json:"sections"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	DurationMinutes int      `json:"durationMinutes"`
	TotalSlots      int      `json:"totalSlots"`
	CellCount       int      `json:"cellCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAllocationRequest) ToUseCaseRequest() (*createAllocation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	sections := make([]domain.SectionID, 0, len(r.Sections))
	for _, s := range r.Sections {
		sections = append(sections, domain.SectionID(s))
	}

	return &createAllocation.Request{
		Regime:          domain.Regime(r.Regime),
		TeamName:        r.TeamName,
		Date:            date,
		PitchID:         r.PitchID,
		StartTime:       startTime,
		Sections:        sections,
		DurationMinutes: r.DurationMinutes,
		LayoutLabel:     r.LayoutLabel,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAllocation.Response) *AllocationResponse {
	sections := make([]string, 0, len(resp.Sections))
	for _, s := range resp.Sections {
		sections = append(sections, string(s))
	}

	return &AllocationResponse{
		AllocationID:    resp.AllocationID,
		Regime:          string(resp.Regime),
		TeamName:        resp.TeamName,
		TeamColor:       resp.TeamColor,
		Bracket:         string(resp.Bracket),
		Date:            resp.Date.Format(domain.DateFormat),
		PitchID:         resp.PitchID,
		Sections:        sections,
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		TotalSlots:      resp.TotalSlots,
		CellCount:       resp.CellCount,
	}
}

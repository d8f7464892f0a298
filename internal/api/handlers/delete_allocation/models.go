package delete_allocation

import (
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
	deleteAllocation "github.com/a1exks/FCP-AllocationService/internal/usecase/delete_allocation"
	"github.com/a1exks/FCP-AllocationService/pkg/types"
)

// DeleteAllocationRequest адресует бронирование любой из его ячеек
type DeleteAllocationRequest struct {
	Regime  string `json:"regime"`  // "training" | "match"
	Date    string `json:"date"`    // "2026-09-05"
	Time    string `json:"time"`    // метка ячейки, "17:30"
	PitchID string `json:"pitchId"`
	Section string `json:"section"`
}

// DeleteAllocationResponse HTTP response model
type DeleteAllocationResponse struct {
	AllocationID string `json:"allocationId"`
	TeamName     string `json:"teamName"`
	CellsRemoved int64  `json:"cellsRemoved"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DeleteAllocationRequest) ToUseCaseRequest() (*deleteAllocation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	timeLabel, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &deleteAllocation.Request{
		Regime:  domain.Regime(r.Regime),
		Date:    date,
		Time:    timeLabel,
		PitchID: r.PitchID,
		Section: domain.SectionID(r.Section),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *deleteAllocation.Response) *DeleteAllocationResponse {
	return &DeleteAllocationResponse{
		AllocationID: resp.AllocationID,
		TeamName:     resp.TeamName,
		CellsRemoved: resp.CellsRemoved,
	}
}

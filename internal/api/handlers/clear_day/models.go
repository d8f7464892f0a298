package clear_day

import (
	"github.com/a1exks/FCP-AllocationService/internal/service/allocations/models"
)

// ClearDayResponse HTTP response model
type ClearDayResponse struct {
	Date         string `json:"date"`
	CellsRemoved int64  `json:"cellsRemoved"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ClearDayResponse) *ClearDayResponse {
	return &ClearDayResponse{
		Date:         resp.Date,
		CellsRemoved: resp.CellsRemoved,
	}
}

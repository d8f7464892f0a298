package delete_allocation

import (
	"errors"
	"net/http"

	"github.com/a1exks/FCP-AllocationService/internal/api/handlers"
	deleteAllocation "github.com/a1exks/FCP-AllocationService/internal/usecase/delete_allocation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCellAddress = "некорректный адрес ячейки"
	msgNotFound           = "в указанной ячейке нет бронирования"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase DeleteAllocationUseCase
	logger  Logger
}

func NewHandler(useCase DeleteAllocationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/allocations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteAllocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /allocations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("DELETE /allocations - Failed to parse cell address: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCellAddress)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, deleteAllocation.ErrNotFound):
			h.logger.Warn("DELETE /allocations - Not found: pitch=%s, date=%s, time=%s, section=%s",
				req.PitchID, req.Date, req.Time, req.Section)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, deleteAllocation.ErrInvalidInput):
			h.logger.Warn("DELETE /allocations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /allocations - Failed to delete allocation: pitch=%s, date=%s, error=%v",
				req.PitchID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("DELETE /allocations - Allocation removed: allocation_id=%s, team=%s, cells=%d",
		result.AllocationID, result.TeamName, result.CellsRemoved)
	handlers.RespondJSON(w, http.StatusOK, response)
}

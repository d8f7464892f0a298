package create_allocation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a1exks/FCP-AllocationService/internal/api/handlers"
	createAllocation "github.com/a1exks/FCP-AllocationService/internal/usecase/create_allocation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgConflict           = "выбранные ячейки сетки уже заняты"
	msgUnknownLayout      = "раскладка недоступна для возрастной категории команды"
	msgPitchNotFound      = "поле не найдено"
	msgSectionNotOnPitch  = "секция отсутствует на выбранном поле"
	msgInvalidInput       = "некорректные параметры бронирования"
)

type Handler struct {
	useCase CreateAllocationUseCase
	logger  Logger
}

func NewHandler(useCase CreateAllocationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/allocations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAllocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /allocations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /allocations - Failed to parse request: %v", err)
		if strings.Contains(err.Error(), "invalid time string") {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAllocation.ErrConflict):
			h.logger.Warn("POST /allocations - Conflict: team=%s, pitch=%s, date=%s",
				req.TeamName, req.PitchID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		case errors.Is(err, createAllocation.ErrUnknownLayout):
			h.logger.Warn("POST /allocations - Unknown layout: team=%s, layout=%q", req.TeamName, req.LayoutLabel)
			handlers.RespondBadRequest(w, msgUnknownLayout)

		case errors.Is(err, createAllocation.ErrPitchNotFound):
			h.logger.Warn("POST /allocations - Pitch not found: pitch=%s", req.PitchID)
			handlers.RespondNotFound(w, msgPitchNotFound)

		case errors.Is(err, createAllocation.ErrSectionNotOnPitch):
			h.logger.Warn("POST /allocations - Section not on pitch: pitch=%s, sections=%v",
				req.PitchID, req.Sections)
			handlers.RespondBadRequest(w, msgSectionNotOnPitch)

		case errors.Is(err, createAllocation.ErrInvalidInput):
			h.logger.Warn("POST /allocations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /allocations - Failed to create allocation: team=%s, pitch=%s, error=%v",
				req.TeamName, req.PitchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /allocations - Allocation created: allocation_id=%s, team=%s, pitch=%s, cells=%d",
		result.AllocationID, req.TeamName, req.PitchID, result.CellCount)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

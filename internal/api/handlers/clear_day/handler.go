package clear_day

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/a1exks/FCP-AllocationService/internal/api/handlers"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/internal/service/allocations"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	service AllocationService
	logger  Logger
}

func NewHandler(service AllocationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/days/{date}
// Сбрасывает обе сетки дня целиком, одной транзакцией.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("DELETE /days/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ClearDay(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, allocations.ErrInvalidInput):
			h.logger.Warn("DELETE /days/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /days/{date} - Failed to clear day: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /days/{date} - Day cleared: date=%s, cells=%d", dateStr, result.CellsRemoved)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

package get_day_grid

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
	msgInvalidRegime = "некорректный режим, ожидается training или match"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPitchNotFound = "поле не найдено"
	msgInvalidInput  = "некорректные параметры запроса"
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

// Handle GET /api/v1/pitches/{pitchId}/grid?regime=training&date=2026-09-05
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pitchID := vars["pitchId"]

	regime := domain.Regime(r.URL.Query().Get("regime"))
	if !regime.IsValid() {
		h.logger.Warn("GET /pitches/{id}/grid - Invalid regime: %q", r.URL.Query().Get("regime"))
		handlers.RespondBadRequest(w, msgInvalidRegime)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /pitches/{id}/grid - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	grid, err := h.service.DayGrid(r.Context(), regime, date, pitchID)
	if err != nil {
		switch {
		case errors.Is(err, allocations.ErrPitchNotFound):
			h.logger.Warn("GET /pitches/{id}/grid - Pitch not found: pitch=%s", pitchID)
			handlers.RespondNotFound(w, msgPitchNotFound)

		case errors.Is(err, allocations.ErrInvalidInput):
			h.logger.Warn("GET /pitches/{id}/grid - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /pitches/{id}/grid - Failed to load grid: pitch=%s, error=%v", pitchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pitches/{id}/grid - Grid loaded: pitch=%s, regime=%s, cells=%d",
		pitchID, regime, len(grid.Cells))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(grid))
}

package get_utilization

import (
	"errors"
	"net/http"
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/api/handlers"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
	getUtilization "github.com/a1exks/FCP-AllocationService/internal/usecase/get_utilization"
)

const (
	msgInvalidStartDate = "некорректная начальная дата, ожидается YYYY-MM-DD"
	msgInvalidEndDate   = "некорректная конечная дата, ожидается YYYY-MM-DD"
	msgInvalidPeriod    = "некорректный отчетный период"
)

type Handler struct {
	useCase GetUtilizationUseCase
	logger  Logger
}

func NewHandler(useCase GetUtilizationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/utilization?startDate=2026-09-01&endDate=2026-09-07
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /utilization - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /utilization - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEndDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getUtilization.Request{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getUtilization.ErrInvalidInput):
			h.logger.Warn("GET /utilization - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /utilization - Failed to build report: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /utilization - Report built: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}

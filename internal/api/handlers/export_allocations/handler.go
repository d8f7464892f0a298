package export_allocations

import (
	"net/http"
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/api/handlers"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
)

const (
	msgInvalidStartDate = "некорректная начальная дата, ожидается YYYY-MM-DD"
	msgInvalidEndDate   = "некорректная конечная дата, ожидается YYYY-MM-DD"
	msgInvalidPeriod    = "начальная дата позже конечной"
)

type Handler struct {
	service InterchangeService
	logger  Logger
}

func NewHandler(service InterchangeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/export?startDate=2026-09-01&endDate=2026-09-30
// Конверт экспорта отдается как есть: его формат и есть внешний контракт.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /export - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /export - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEndDate)
		return
	}

	if endDate.Before(startDate) {
		h.logger.Warn("GET /export - Start date after end date: %s > %s",
			query.Get("startDate"), query.Get("endDate"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	envelope, err := h.service.Export(r.Context(), startDate, endDate)
	if err != nil {
		h.logger.Error("GET /export - Failed to export: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /export - Export built: cells=%d", len(envelope.Allocations))
	handlers.RespondJSON(w, http.StatusOK, envelope)
}

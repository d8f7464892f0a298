package import_allocations

import (
	"errors"
	"io"
	"net/http"

	"github.com/a1exks/FCP-AllocationService/internal/api/handlers"
	"github.com/a1exks/FCP-AllocationService/internal/service/interchange"
)

const (
	msgUnreadableBody = "не удалось прочитать тело запроса"
	msgInvalidPayload = "нечитаемый или противоречивый файл импорта"
	msgConflict       = "импорт пересекается с существующими бронированиями"
)

// Файл экспорта месяца двух полей занимает десятки килобайт;
// мегабайтный предел оставляет запас на порядки
const maxImportBytes = 8 << 20

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

// Handle POST /api/v1/import
// Импорт атомарен: при любом конфликте не применяется ничего.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		h.logger.Warn("POST /import - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgUnreadableBody)
		return
	}

	result, err := h.service.Import(r.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, interchange.ErrInvalidPayload):
			h.logger.Warn("POST /import - Invalid payload: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPayload)

		case errors.Is(err, interchange.ErrConflict):
			h.logger.Warn("POST /import - Conflict: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		default:
			h.logger.Error("POST /import - Failed to import: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /import - Import applied: groups=%d, cells=%d", result.Groups, result.Cells)
	handlers.RespondJSON(w, http.StatusOK, ImportResponse{
		Groups: result.Groups,
		Cells:  result.Cells,
	})
}

// ImportResponse HTTP response model
type ImportResponse struct {
	Groups int `json:"groups"`
	Cells  int `json:"cells"`
}

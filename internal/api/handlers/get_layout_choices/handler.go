package get_layout_choices

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/a1exks/FCP-AllocationService/internal/api/handlers"
	"github.com/a1exks/FCP-AllocationService/internal/service/allocations"
)

const (
	msgMissingPitchID = "не указан идентификатор поля"
	msgPitchNotFound  = "поле не найдено"
	msgInvalidInput   = "некорректные параметры запроса"
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

// Handle GET /api/v1/teams/{teamName}/layout-choices?pitchId=pitch1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamName := vars["teamName"]

	pitchID := r.URL.Query().Get("pitchId")
	if pitchID == "" {
		h.logger.Warn("GET /teams/{name}/layout-choices - Missing pitch ID")
		handlers.RespondBadRequest(w, msgMissingPitchID)
		return
	}

	choices, err := h.service.LayoutChoices(r.Context(), teamName, pitchID)
	if err != nil {
		switch {
		case errors.Is(err, allocations.ErrPitchNotFound):
			h.logger.Warn("GET /teams/{name}/layout-choices - Pitch not found: pitch=%s", pitchID)
			handlers.RespondNotFound(w, msgPitchNotFound)

		case errors.Is(err, allocations.ErrInvalidInput):
			h.logger.Warn("GET /teams/{name}/layout-choices - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /teams/{name}/layout-choices - Failed: team=%s, error=%v", teamName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /teams/{name}/layout-choices - Choices resolved: team=%s, bracket=%s, choices=%d",
		teamName, choices.Bracket, len(choices.Choices))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(choices))
}

package find_reservations

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgEmptySearch = "укажите имя или телефон"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/search
// Query params: name, phone (хотя бы один обязателен); совпадение по
// точному равенству, имя ИЛИ телефон (включающее ИЛИ)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := strings.TrimSpace(query.Get("name"))
	phone := strings.TrimSpace(query.Get("phone"))

	result, err := h.service.FindMatches(r.Context(), name, phone)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrEmptySearch):
			h.logger.Warn("GET /reservations/search - Empty search")
			handlers.RespondBadRequest(w, msgEmptySearch)

		default:
			h.logger.Error("GET /reservations/search - Failed to search: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/search - Found %d reservations", len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-ReservationService/internal/usecase/get_calendar"
)

const (
	msgInvalidYear    = "некорректный год"
	msgInvalidMonth   = "некорректный месяц, ожидается 1..12"
	msgInvalidSurface = "некорректная поверхность, ожидается booking или admin"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: year (required), month (required, 1..12), surface (booking|admin, default booking)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	surface := getCalendar.Surface(query.Get("surface"))
	if surface == "" {
		surface = getCalendar.SurfaceBooking
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		Year:    year,
		Month:   month,
		Surface: surface,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidMonth):
			h.logger.Warn("GET /calendar - Invalid month: %d", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getCalendar.ErrInvalidSurface):
			h.logger.Warn("GET /calendar - Invalid surface: %q", surface)
			handlers.RespondBadRequest(w, msgInvalidSurface)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package get_time_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getTimeSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_time_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

// SlotResponse один слот в HTTP ответе
type SlotResponse struct {
	Time  string `json:"time"`
	Taken bool   `json:"taken"`
}

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTimeSlots.Request{
		Date: types.DateString(dateStr),
	})
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrDateRequired), errors.Is(err, getTimeSlots.ErrInvalidDate):
			h.logger.Warn("GET /slots - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed to get slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := make([]SlotResponse, len(result.Slots))
	for i, s := range result.Slots {
		slots[i] = SlotResponse{Time: s.Time.String(), Taken: s.Taken}
	}

	handlers.RespondJSON(w, http.StatusOK, &TimeSlotsResponse{
		Date:  result.Date.String(),
		Slots: slots,
	})
}

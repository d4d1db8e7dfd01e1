package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Дата и время проверяются вместе: незавершённый выбор даёт одну ошибку
func validateRequest(req *Request) error {
	if req.Date.IsZero() || req.Time.IsZero() {
		return ErrSelectionIncomplete
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if !domain.IsValidTimeSlot(req.Time) {
		return ErrInvalidTimeSlot
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ErrNameRequired
	}
	if len([]rune(name)) > domain.MaxNameLength {
		return ErrNameTooLong
	}

	if len([]rune(strings.TrimSpace(req.Memo))) > domain.MaxMemoLength {
		return ErrMemoTooLong
	}

	return nil
}

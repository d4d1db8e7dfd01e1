package get_time_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса слотов на дату
type Request struct {
	Date types.DateString // Дата, для которой запрашивается сетка слотов
}

// Slot один слот дневного набора с флагом занятости
type Slot struct {
	Time  types.TimeString // Метка слота, например "09:00"
	Taken bool             // Слот занят бронью pending или confirmed
}

// Response модель ответа со слотами на дату
type Response struct {
	Date  types.DateString // Запрошенная дата
	Slots []Slot           // Все слоты дневного набора по порядку
}

// UseCase use case получения сетки слотов на дату
// Занятость пересчитывается по свежему срезу на каждый запрос, кеша нет
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, ErrDateRequired
	}
	if err := req.Date.Validate(); err != nil {
		uc.logger.Warn("GetTimeSlots: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	all, err := uc.reservationRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(domain.TimeSlots))
	for i, t := range domain.TimeSlots {
		slots[i] = Slot{
			Time:  t,
			Taken: domain.IsSlotTaken(all, req.Date, t),
		}
	}

	uc.logger.Info("GetTimeSlots: date=%s", req.Date)
	return &Response{Date: req.Date, Slots: slots}, nil
}

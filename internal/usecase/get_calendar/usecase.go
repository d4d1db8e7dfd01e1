package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// UseCase use case построения сетки календаря для обеих поверхностей
// Одна общая реализация вместо двух независимых копий логики:
// поверхность влияет только на прикладные флаги ячеек
type UseCase struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case построения календаря
// Навигация по месяцам делается как ±1 к якорю на стороне клиента и повторный
// запрос; сервер границ не накладывает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Month < 1 || req.Month > 12 {
		uc.logger.Warn("GetCalendar: invalid month %d", req.Month)
		return nil, ErrInvalidMonth
	}
	if req.Surface != SurfaceBooking && req.Surface != SurfaceAdmin {
		uc.logger.Warn("GetCalendar: unknown surface %q", req.Surface)
		return nil, ErrInvalidSurface
	}

	all, err := uc.reservationRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	grid := domain.GenerateCalendar(req.Year, time.Month(req.Month), now)

	cells := make([]Cell, len(grid))
	for i, gc := range grid {
		cell := Cell{
			Date:           gc.Date,
			Day:            gc.Day,
			InCurrentMonth: gc.InCurrentMonth,
			IsPast:         gc.IsPast,
		}

		switch req.Surface {
		case SurfaceBooking:
			// Поверхность записи: прошедшие и чужие даты недоступны,
			// маркеры занятости посетителю не показываются
			cell.Selectable = gc.InCurrentMonth && !gc.IsPast
		case SurfaceAdmin:
			// Административная поверхность: кликабельны все даты месяца,
			// включая прошедшие, они нужны для фильтрации списка
			cell.Selectable = gc.InCurrentMonth
			if gc.InCurrentMonth {
				cell.HasActivity = domain.HasActivity(all, gc.Date)
			}
		}

		cells[i] = cell
	}

	weekdays := make([]string, len(domain.Weekdays))
	for i, wd := range domain.Weekdays {
		weekdays[i] = wd.String()
	}

	uc.logger.Info("GetCalendar: built %d-%02d grid for surface=%s", req.Year, req.Month, req.Surface)
	return &Response{
		Year:     req.Year,
		Month:    req.Month,
		Weekdays: weekdays,
		Cells:    cells,
	}, nil
}

package create_reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// UseCase use case создания брони посетителем
type UseCase struct {
	reservationRepo ReservationRepository
	processingDelay time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// processingDelay задает фиксированную искусственную паузу перед ответом об
// успехе (в исходном виджете 1.3 с, только ради индикатора загрузки);
// семантики повтора или отмены у неё нет, она всегда досыпает до конца
func NewUseCase(
	reservationRepo ReservationRepository,
	processingDelay time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		processingDelay: processingDelay,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
// Слот перепроверяется по свежему срезу уже внутри цикла read-modify-write:
// если между рендером календаря и отправкой формы слот заняли, заявка
// отклоняется с ErrSlotTaken вместо тихого двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: name=%q, date=%s, time=%s", req.Name, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Загружаем актуальный срез списка броней
	all, err := uc.reservationRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	// 4. Перепроверяем доступность слота по свежему срезу
	if domain.IsSlotTaken(all, req.Date, req.Time) {
		uc.logger.Warn("CreateReservation: slot %s %s is already taken", req.Date, req.Time)
		return nil, ErrSlotTaken
	}

	// 5. Назначаем уникальный ID: метка времени в миллисекундах,
	// при коллизии сдвигаемся вперёд, ID никогда не переиспользуются
	id := nextID(all, now)

	reservation := domain.Reservation{
		ID:        id,
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Date:      req.Date,
		Time:      req.Time,
		Memo:      strings.TrimSpace(req.Memo),
		Status:    domain.StatusPending,
		CreatedAt: now,
	}

	// 6. Сохраняем полный список с новой бронью
	if err := uc.reservationRepo.Save(ctx, append(all, reservation)); err != nil {
		uc.logger.Error("CreateReservation: failed to save reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to save reservations: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", id)

	// 7. Искусственная задержка перед подтверждением
	if uc.processingDelay > 0 {
		time.Sleep(uc.processingDelay)
	}

	return &Response{
		ID:        reservation.ID,
		Name:      reservation.Name,
		Phone:     reservation.Phone,
		Date:      reservation.Date,
		Time:      reservation.Time,
		Memo:      reservation.Memo,
		Status:    string(reservation.Status),
		CreatedAt: reservation.CreatedAt,
	}, nil
}

// nextID выбирает ID, не занятый ни одной из существующих броней
// Базой служит метка времени создания в миллисекундах
func nextID(all []domain.Reservation, now time.Time) int64 {
	used := make(map[int64]struct{}, len(all))
	for i := range all {
		used[all[i].ID] = struct{}{}
	}

	id := now.UnixMilli()
	for {
		if _, taken := used[id]; !taken {
			return id
		}
		id++
	}
}

package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// Service сервис жизненного цикла броней: статусные переходы,
// редактирование полей, выборки для административной и lookup-поверхностей
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReservation(res), nil
}

// List получает список броней с фильтрацией по статусу и дате,
// отсортированный по времени создания (новые первыми)
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	all, err := s.reservationRepo.Load(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	// Фильтр по категории статуса (опционально)
	var status *domain.ReservationStatus
	if req.Status != nil && *req.Status != "" && *req.Status != "all" {
		st, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status filter %q", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &st
	}

	// Фильтр по выбранной дате (опционально)
	var date *string
	if req.Date != nil && *req.Date != "" {
		if _, err := models.ToDomainDate(*req.Date); err != nil {
			s.logger.Warn("List: invalid date filter %q", *req.Date)
			return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
		}
		date = req.Date
	}

	filtered := make([]domain.Reservation, 0, len(all))
	for i := range all {
		if status != nil && all[i].Status != *status {
			continue
		}
		if date != nil && all[i].Date.String() != *date {
			continue
		}
		filtered = append(filtered, all[i])
	}

	// Новые брони первыми
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	s.logger.Info("List: returning %d of %d reservations", len(filtered), len(all))
	return models.FromDomainReservationList(filtered), nil
}

// Stats возвращает сводку по статусам для панели администратора
// Отменённые брони входят в total, но отдельного счётчика не имеют
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	all, err := s.reservationRepo.Load(ctx)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	stats := &models.StatsResponse{Total: len(all)}
	for i := range all {
		switch all[i].Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}

// SetStatus устанавливает новый статус брони
// Предыдущее состояние не проверяется: повторное подтверждение или
// подтверждение отклонённой брони не блокируются, переходы ограничивает
// вызывающая поверхность, не контроллер
func (s *Service) SetStatus(ctx context.Context, id int64, status string) error {
	newStatus, err := models.ToDomainStatus(status)
	if err != nil {
		s.logger.Warn("SetStatus: invalid status %q for reservation id=%d", status, id)
		return ErrInvalidStatus
	}

	found, err := s.reservationRepo.UpdateByID(ctx, id, func(r *domain.Reservation) {
		r.Status = newStatus
	})
	if err != nil {
		s.logger.Error("SetStatus: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}
	if !found {
		s.logger.Warn("SetStatus: reservation id=%d not found", id)
		return ErrReservationNotFound
	}

	s.logger.Info("SetStatus: reservation id=%d set to %s", id, newStatus)
	return nil
}

// Cancel отменяет бронь (действие посетителя)
// Запись не удаляется физически, отмена лишь меняет статус, история сохраняется
func (s *Service) Cancel(ctx context.Context, id int64) error {
	return s.SetStatus(ctx, id, string(domain.StatusCancelled))
}

// Edit обновляет контактные поля брони (имя, телефон, заметка)
// Статус, дата, время, id и createdAt остаются нетронутыми
func (s *Service) Edit(ctx context.Context, id int64, req *models.EditRequest) error {
	if req.IsEmpty() {
		s.logger.Warn("Edit: empty edit request for reservation id=%d", id)
		return ErrNoFieldsToEdit
	}

	found, err := s.reservationRepo.UpdateByID(ctx, id, func(r *domain.Reservation) {
		if req.Name != nil {
			r.Name = *req.Name
		}
		if req.Phone != nil {
			r.Phone = *req.Phone
		}
		if req.Memo != nil {
			r.Memo = *req.Memo
		}
	})
	if err != nil {
		s.logger.Error("Edit: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Edit - repository error: %v", ErrInternal, err)
	}
	if !found {
		s.logger.Warn("Edit: reservation id=%d not found", id)
		return ErrReservationNotFound
	}

	s.logger.Info("Edit: reservation id=%d updated", id)
	return nil
}

// FindMatches возвращает все брони, у которых совпало имя ИЛИ телефон
// (включающее ИЛИ: достаточно одного совпадения). Хотя бы одно из полей
// обязано быть непустым
func (s *Service) FindMatches(ctx context.Context, name, phone string) (*models.ReservationListResponse, error) {
	if name == "" && phone == "" {
		return nil, ErrEmptySearch
	}

	all, err := s.reservationRepo.Load(ctx)
	if err != nil {
		s.logger.Error("FindMatches: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindMatches - repository error: %v", ErrInternal, err)
	}

	matched := make([]domain.Reservation, 0)
	for i := range all {
		nameMatch := name != "" && all[i].Name == name
		phoneMatch := phone != "" && all[i].Phone == phone
		if nameMatch || phoneMatch {
			matched = append(matched, all[i])
		}
	}

	s.logger.Info("FindMatches: found %d reservations for name=%q phone=%q", len(matched), name, phone)
	return models.FromDomainReservationList(matched), nil
}

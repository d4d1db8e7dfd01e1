package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListRequest запрос на получение списка броней с фильтрацией
// Оба фильтра опциональны и комбинируются по И: категория статуса
// и выбранная в календаре дата
type ListRequest struct {
	Status *string `json:"status,omitempty"`
	Date   *string `json:"date,omitempty"`
}

// EditRequest запрос на редактирование брони
// Обновляются только переданные поля; id, дата, время, статус и
// createdAt не меняются никогда
type EditRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Memo  *string `json:"memo,omitempty"`
}

// IsEmpty проверяет, что запрос не содержит ни одного поля
func (r *EditRequest) IsEmpty() bool {
	return r.Name == nil && r.Phone == nil && r.Memo == nil
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Date      string `json:"date"` // "2024-05-10"
	Time      string `json:"time"` // "09:00"
	Memo      string `json:"memo,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"` // ISO 8601
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// StatsResponse сводка по статусам для панели администратора
type StatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Rejected  int `json:"rejected"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}
	return &ReservationResponse{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Date:      r.Date.String(),
		Time:      r.Time.String(),
		Memo:      r.Memo,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(all []domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(all)),
	}
	for i := range all {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(&all[i]))
	}
	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ToDomainDate конвертирует строку даты в types.DateString с валидацией
func ToDomainDate(date string) (types.DateString, error) {
	return types.NewDateStringFromString(date)
}

package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"` // обычно "010-1234-5678"
	Date  string `json:"date"`  // "2024-05-10"
	Time  string `json:"time"`  // "09:00"
	Memo  string `json:"memo,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Memo      string `json:"memo,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые дата и время пропускаются как есть: их отсутствие означает
// незавершённый выбор, о котором сообщает use case, а не ошибка формата
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	var date types.DateString
	if r.Date != "" {
		parsed, err := types.NewDateStringFromString(r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	var slot types.TimeString
	if r.Time != "" {
		parsed, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, err
		}
		slot = parsed
	}

	return &createReservation.Request{
		Name:  r.Name,
		Phone: r.Phone,
		Date:  date,
		Time:  slot,
		Memo:  r.Memo,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Phone:     resp.Phone,
		Date:      resp.Date.String(),
		Time:      resp.Time.String(),
		Memo:      resp.Memo,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}

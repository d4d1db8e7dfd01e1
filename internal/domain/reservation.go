package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusRejected  ReservationStatus = "rejected"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a consultation booking request
// Сериализуется в JSON-массив под ключом "reservations"; форма записи
// совпадает с тем, что кладут и читают все поверхности
type Reservation struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone"`
	Date      types.DateString  `json:"date"`
	Time      types.TimeString  `json:"time"`
	Memo      string            `json:"memo"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// OccupiesSlot returns true if the reservation keeps its (date, time) slot taken
// Отклонённые и отменённые брони освобождают слот для повторного бронирования
func (r *Reservation) OccupiesSlot() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CountsAsActivity returns true if the reservation marks its date as "has activity"
// В отличие от OccupiesSlot, отклонённые брони здесь учитываются: администратор
// должен видеть, что в этот день что-то происходило
func (r *Reservation) CountsAsActivity() bool {
	return r.Status != StatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled by the visitor
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeDecided returns true if the reservation is still awaiting an admin decision
func (r *Reservation) CanBeDecided() bool {
	return r.Status == StatusPending
}

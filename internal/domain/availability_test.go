package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func makeReservation(id int64, date, slot string, status ReservationStatus) Reservation {
	return Reservation{
		ID:        id,
		Name:      "홍길동",
		Phone:     "010-1234-5678",
		Date:      types.DateString(date),
		Time:      types.TimeString(slot),
		Status:    status,
		CreatedAt: time.Now(),
	}
}

func TestIsSlotTaken(t *testing.T) {
	date := types.DateString("2024-05-10")
	slot := types.TimeString("09:00")

	tests := []struct {
		name   string
		status ReservationStatus
		taken  bool
	}{
		{name: "pending occupies slot", status: StatusPending, taken: true},
		{name: "confirmed occupies slot", status: StatusConfirmed, taken: true},
		{name: "rejected frees slot", status: StatusRejected, taken: false},
		{name: "cancelled frees slot", status: StatusCancelled, taken: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all := []Reservation{makeReservation(1, "2024-05-10", "09:00", tt.status)}
			assert.Equal(t, tt.taken, IsSlotTaken(all, date, slot))
		})
	}
}

func TestIsSlotTaken_DifferentDateOrTime(t *testing.T) {
	all := []Reservation{makeReservation(1, "2024-05-10", "09:00", StatusConfirmed)}

	assert.False(t, IsSlotTaken(all, "2024-05-11", "09:00"))
	assert.False(t, IsSlotTaken(all, "2024-05-10", "10:00"))
	assert.False(t, IsSlotTaken(nil, "2024-05-10", "09:00"))
}

func TestIsSlotTaken_StatusFlipFreesSlot(t *testing.T) {
	all := []Reservation{makeReservation(1, "2024-05-10", "09:00", StatusPending)}
	assert.True(t, IsSlotTaken(all, "2024-05-10", "09:00"))

	all[0].Status = StatusRejected
	assert.False(t, IsSlotTaken(all, "2024-05-10", "09:00"))

	all[0].Status = StatusConfirmed
	assert.True(t, IsSlotTaken(all, "2024-05-10", "09:00"))
}

func TestHasActivity(t *testing.T) {
	tests := []struct {
		name     string
		status   ReservationStatus
		activity bool
	}{
		{name: "pending counts", status: StatusPending, activity: true},
		{name: "confirmed counts", status: StatusConfirmed, activity: true},
		{name: "rejected still counts", status: StatusRejected, activity: true},
		{name: "cancelled does not count", status: StatusCancelled, activity: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all := []Reservation{makeReservation(1, "2024-05-10", "09:00", tt.status)}
			assert.Equal(t, tt.activity, HasActivity(all, "2024-05-10"))
		})
	}
}

// Отклонённая бронь видна как активность дня, но слот при этом свободен
func TestRejectedReservation_ActivityWithoutSlot(t *testing.T) {
	all := []Reservation{makeReservation(1, "2024-05-10", "09:00", StatusRejected)}

	assert.True(t, HasActivity(all, "2024-05-10"))
	assert.False(t, IsSlotTaken(all, "2024-05-10", "09:00"))
}

func TestHasActivity_OtherDate(t *testing.T) {
	all := []Reservation{makeReservation(1, "2024-05-10", "09:00", StatusPending)}

	assert.False(t, HasActivity(all, "2024-05-11"))
	assert.False(t, HasActivity(nil, "2024-05-10"))
}

package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNameLength = 100
	MaxMemoLength = 500
)

// TimeSlots фиксированный дневной набор слотов для записи
// 12:00 отсутствует (обеденный перерыв)
var TimeSlots = []types.TimeString{
	"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

// IsValidTimeSlot проверяет, что время входит в дневной набор слотов
func IsValidTimeSlot(t types.TimeString) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// ValidStatuses список допустимых статусов брони
var ValidStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusRejected,
	StatusCancelled,
}

// IsValidStatus проверяет, что статус входит в список допустимых
func IsValidStatus(s ReservationStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

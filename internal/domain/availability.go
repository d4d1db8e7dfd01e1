package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// Чистые функции доступности: считаются заново на каждый рендер календаря
// по свежему срезу списка броней, ничего не кешируют

// HasActivity проверяет, есть ли на дату хотя бы одна неотменённая бронь
// Используется для точек-маркеров в календаре администратора
func HasActivity(all []Reservation, date types.DateString) bool {
	for i := range all {
		if all[i].Date == date && all[i].CountsAsActivity() {
			return true
		}
	}
	return false
}

// IsSlotTaken проверяет, занят ли слот (date, time)
// Слот занимают только брони в статусе pending или confirmed;
// rejected и cancelled освобождают его для повторного бронирования
func IsSlotTaken(all []Reservation, date types.DateString, t types.TimeString) bool {
	for i := range all {
		if all[i].Date == date && all[i].Time == t && all[i].OccupiesSlot() {
			return true
		}
	}
	return false
}

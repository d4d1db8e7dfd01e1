package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CalendarGridSize размер сетки календаря: всегда 6 недель по 7 дней,
// чтобы сетка не меняла высоту от месяца к месяцу
const CalendarGridSize = 42

// Weekdays заголовок дней недели в фиксированном порядке (воскресенье первое)
var Weekdays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// CalendarCell одна ячейка сетки календаря
type CalendarCell struct {
	Date           types.DateString
	Day            int  // число месяца для отображения
	InCurrentMonth bool // ячейка принадлежит отображаемому месяцу
	IsPast         bool // дата строго раньше сегодняшней (полночь локального времени)
}

// GenerateCalendar строит сетку из 42 ячеек для указанного месяца
// Сетка начинается с воскресенья, предшествующего первому числу месяца
// (или с самого первого числа, если оно воскресенье); хвост добивается
// днями следующего месяца. Границ навигации нет: year/month могут быть
// сколь угодно далеко в прошлом или будущем
func GenerateCalendar(year int, month time.Month, today time.Time) []CalendarCell {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	start := firstDay.AddDate(0, 0, -int(firstDay.Weekday()))

	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)

	cells := make([]CalendarCell, CalendarGridSize)
	for i := 0; i < CalendarGridSize; i++ {
		date := start.AddDate(0, 0, i)
		cells[i] = CalendarCell{
			Date:           types.NewDateString(date),
			Day:            date.Day(),
			InCurrentMonth: date.Month() == month && date.Year() == year,
			IsPast:         date.Before(todayMidnight),
		}
	}
	return cells
}

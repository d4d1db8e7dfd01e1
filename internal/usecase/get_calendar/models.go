package get_calendar

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// Surface поверхность, для которой строится календарь
// Политика интерактивности различается: поверхность записи не даёт
// выбирать прошедшие даты, административная даёт (для фильтрации)
type Surface string

const (
	SurfaceBooking Surface = "booking"
	SurfaceAdmin   Surface = "admin"
)

// Request модель запроса сетки календаря
type Request struct {
	Year    int     // Год якоря (без ограничений навигации)
	Month   int     // Месяц якоря, 1..12
	Surface Surface // Поверхность: booking или admin
}

// Cell одна ячейка сетки календаря с прикладными флагами
type Cell struct {
	Date           types.DateString // Дата ячейки
	Day            int              // Число месяца для отображения
	InCurrentMonth bool             // Принадлежит отображаемому месяцу
	IsPast         bool             // Строго раньше сегодняшней даты
	HasActivity    bool             // Есть неотменённые брони (только admin)
	Selectable     bool             // Ячейка кликабельна на этой поверхности
}

// Response модель ответа с сеткой календаря
type Response struct {
	Year     int      // Год якоря
	Month    int      // Месяц якоря
	Weekdays []string // Заголовок дней недели, воскресенье первое
	Cells    []Cell   // Ровно 42 ячейки (6 недель по 7 дней)
}

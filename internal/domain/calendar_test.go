package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func TestGenerateCalendar_GridShape(t *testing.T) {
	today := time.Date(2024, 5, 15, 12, 30, 0, 0, time.Local)
	cells := GenerateCalendar(2024, time.May, today)

	require.Len(t, cells, CalendarGridSize)

	// Первая ячейка всегда воскресенье
	first, err := cells[0].Date.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, first.Weekday())

	// Ячейки идут подряд без пропусков
	for i := 1; i < len(cells); i++ {
		prev, err := cells[i-1].Date.Time()
		require.NoError(t, err)
		cur, err := cells[i].Date.Time()
		require.NoError(t, err)
		assert.Equal(t, prev.AddDate(0, 0, 1), cur)
	}
}

func TestGenerateCalendar_May2024(t *testing.T) {
	// 1 мая 2024 среда, сетка начинается с воскресенья 28 апреля
	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)
	cells := GenerateCalendar(2024, time.May, today)

	assert.Equal(t, types.DateString("2024-04-28"), cells[0].Date)
	assert.False(t, cells[0].InCurrentMonth)

	// 1 мая в ячейке с индексом 3 (вс, пн, вт, ср)
	assert.Equal(t, types.DateString("2024-05-01"), cells[3].Date)
	assert.Equal(t, 1, cells[3].Day)
	assert.True(t, cells[3].InCurrentMonth)

	// 31 мая последний день месяца, дальше хвост июня
	assert.Equal(t, types.DateString("2024-05-31"), cells[33].Date)
	assert.True(t, cells[33].InCurrentMonth)
	assert.Equal(t, types.DateString("2024-06-01"), cells[34].Date)
	assert.False(t, cells[34].InCurrentMonth)
}

func TestGenerateCalendar_FirstDayIsSunday(t *testing.T) {
	// 1 сентября 2024 воскресенье: сетка начинается с самого первого числа
	today := time.Date(2024, 9, 1, 0, 0, 0, 0, time.Local)
	cells := GenerateCalendar(2024, time.September, today)

	assert.Equal(t, types.DateString("2024-09-01"), cells[0].Date)
	assert.True(t, cells[0].InCurrentMonth)
}

func TestGenerateCalendar_IsPast(t *testing.T) {
	// Время внутри дня не влияет: сегодняшняя дата не считается прошедшей
	today := time.Date(2024, 5, 15, 23, 59, 59, 0, time.Local)
	cells := GenerateCalendar(2024, time.May, today)

	byDate := make(map[types.DateString]CalendarCell, len(cells))
	for _, c := range cells {
		byDate[c.Date] = c
	}

	assert.True(t, byDate["2024-05-14"].IsPast)
	assert.False(t, byDate["2024-05-15"].IsPast)
	assert.False(t, byDate["2024-05-16"].IsPast)
}

func TestGenerateCalendar_DistantMonth(t *testing.T) {
	// Навигация не ограничена: далёкое прошлое строится так же
	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)
	cells := GenerateCalendar(1999, time.January, today)

	require.Len(t, cells, CalendarGridSize)
	for _, c := range cells {
		assert.True(t, c.IsPast)
	}
}

package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	all []domain.Reservation
}

func (f *fakeRepo) Load(ctx context.Context) ([]domain.Reservation, error) {
	return f.all, nil
}

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time {
	return f.now
}

func newTestUseCase(repo *fakeRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fakeTime{now: now}
	return uc
}

func cellByDate(t *testing.T, cells []Cell, date types.DateString) Cell {
	t.Helper()
	for _, c := range cells {
		if c.Date == date {
			return c
		}
	}
	t.Fatalf("cell %s not found", date)
	return Cell{}
}

func TestUseCase_Execute_BookingSurface(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{all: []domain.Reservation{{
		ID:     1,
		Date:   "2024-05-20",
		Time:   "09:00",
		Status: domain.StatusPending,
	}}}, now)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: 5, Surface: SurfaceBooking})
	require.NoError(t, err)

	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 5, resp.Month)
	require.Len(t, resp.Cells, domain.CalendarGridSize)
	assert.Equal(t, []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}, resp.Weekdays)

	// Прошедшая дата месяца недоступна
	past := cellByDate(t, resp.Cells, "2024-05-10")
	assert.True(t, past.IsPast)
	assert.False(t, past.Selectable)

	// Сегодняшняя и будущая даты доступны
	assert.True(t, cellByDate(t, resp.Cells, "2024-05-15").Selectable)
	assert.True(t, cellByDate(t, resp.Cells, "2024-05-31").Selectable)

	// Хвост соседнего месяца недоступен
	assert.False(t, cellByDate(t, resp.Cells, "2024-06-01").Selectable)

	// Маркеры занятости посетителю не показываются
	assert.False(t, cellByDate(t, resp.Cells, "2024-05-20").HasActivity)
}

func TestUseCase_Execute_AdminSurface(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{all: []domain.Reservation{
		{ID: 1, Date: "2024-05-20", Time: "09:00", Status: domain.StatusPending},
		{ID: 2, Date: "2024-05-21", Time: "09:00", Status: domain.StatusCancelled},
	}}, now)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: 5, Surface: SurfaceAdmin})
	require.NoError(t, err)

	// Прошедшие даты месяца кликабельны (нужны для фильтрации списка)
	past := cellByDate(t, resp.Cells, "2024-05-10")
	assert.True(t, past.IsPast)
	assert.True(t, past.Selectable)

	// Дни соседних месяцев недоступны
	assert.False(t, cellByDate(t, resp.Cells, "2024-06-01").Selectable)

	// Маркер активности только для неотменённых броней
	assert.True(t, cellByDate(t, resp.Cells, "2024-05-20").HasActivity)
	assert.False(t, cellByDate(t, resp.Cells, "2024-05-21").HasActivity)
	assert.False(t, cellByDate(t, resp.Cells, "2024-05-22").HasActivity)
}

func TestUseCase_Execute_InvalidRequest(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, time.Now())
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{Year: 2024, Month: 0, Surface: SurfaceBooking})
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = uc.Execute(ctx, &Request{Year: 2024, Month: 13, Surface: SurfaceBooking})
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = uc.Execute(ctx, &Request{Year: 2024, Month: 5, Surface: "kiosk"})
	assert.ErrorIs(t, err, ErrInvalidSurface)
}

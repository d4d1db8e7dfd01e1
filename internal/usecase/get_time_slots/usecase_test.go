package get_time_slots

import (
	"context"
	"testing"

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

func TestUseCase_Execute(t *testing.T) {
	uc := NewUseCase(&fakeRepo{all: []domain.Reservation{
		{ID: 1, Date: "2024-05-10", Time: "09:00", Status: domain.StatusPending},
		{ID: 2, Date: "2024-05-10", Time: "13:00", Status: domain.StatusConfirmed},
		{ID: 3, Date: "2024-05-10", Time: "14:00", Status: domain.StatusRejected},
		{ID: 4, Date: "2024-05-11", Time: "10:00", Status: domain.StatusPending},
	}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10"})
	require.NoError(t, err)

	assert.Equal(t, types.DateString("2024-05-10"), resp.Date)
	require.Len(t, resp.Slots, len(domain.TimeSlots))

	taken := make(map[types.TimeString]bool, len(resp.Slots))
	for i, s := range resp.Slots {
		// Слоты возвращаются в порядке дневного набора
		assert.Equal(t, domain.TimeSlots[i], s.Time)
		taken[s.Time] = s.Taken
	}

	assert.True(t, taken["09:00"])
	assert.True(t, taken["13:00"])
	// Отклонённая бронь слот не занимает
	assert.False(t, taken["14:00"])
	// Занятость считается в пределах даты
	assert.False(t, taken["10:00"])
}

func TestUseCase_Execute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10"})
	require.NoError(t, err)
	for _, s := range resp.Slots {
		assert.False(t, s.Taken)
	}
}

func TestUseCase_Execute_InvalidDate(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{})
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = uc.Execute(ctx, &Request{Date: "10.05.2024"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

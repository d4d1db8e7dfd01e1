package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func setupService(t *testing.T) (*Service, *reservationRepo.Repository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := reservationRepo.NewRepository(client)
	return NewService(repo, nopLogger{}), repo
}

func seed(t *testing.T, repo *reservationRepo.Repository, all ...domain.Reservation) {
	t.Helper()
	require.NoError(t, repo.Save(context.Background(), all))
}

func reservationAt(id int64, name, phone, date, slot string, status domain.ReservationStatus, createdAt time.Time) domain.Reservation {
	return domain.Reservation{
		ID:        id,
		Name:      name,
		Phone:     phone,
		Date:      types.DateString(date),
		Time:      types.TimeString(slot),
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestService_GetByID(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()
	seed(t, repo, reservationAt(10, "홍길동", "010-1111-2222", "2024-05-10", "09:00", domain.StatusPending, time.Now()))

	res, err := svc.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.ID)
	assert.Equal(t, "2024-05-10", res.Date)
	assert.Equal(t, "pending", res.Status)

	_, err = svc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_SetStatus(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()
	seed(t, repo, reservationAt(1, "홍길동", "010-1111-2222", "2024-05-10", "09:00", domain.StatusPending, time.Now()))

	require.NoError(t, svc.SetStatus(ctx, 1, "confirmed"))

	res, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", res.Status)

	// Переход не проверяет предыдущее состояние: подтверждённую бронь
	// можно отклонить, а отклонённую подтвердить снова
	require.NoError(t, svc.SetStatus(ctx, 1, "rejected"))
	require.NoError(t, svc.SetStatus(ctx, 1, "confirmed"))

	res, err = svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", res.Status)
}

func TestService_SetStatus_Errors(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()
	seed(t, repo, reservationAt(1, "홍길동", "010-1111-2222", "2024-05-10", "09:00", domain.StatusPending, time.Now()))

	assert.ErrorIs(t, svc.SetStatus(ctx, 1, "approved"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.SetStatus(ctx, 99, "confirmed"), ErrReservationNotFound)
}

// Жизненный цикл одной брони: заявка подтверждается, затем посетитель отменяет
func TestService_ConfirmThenCancel(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()
	seed(t, repo, reservationAt(1, "홍길동", "010-1111-2222", "2024-05-10", "09:00", domain.StatusPending, time.Now()))

	require.NoError(t, svc.SetStatus(ctx, 1, "confirmed"))
	require.NoError(t, svc.Cancel(ctx, 1))

	res, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", res.Status)

	// Запись осталась в истории и в total
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 0, stats.Pending)
	assert.Equal(t, 0, stats.Confirmed)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc, _ := setupService(t)
	assert.ErrorIs(t, svc.Cancel(context.Background(), 42), ErrReservationNotFound)
}

func TestService_List_SortedNewestFirst(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	seed(t, repo,
		reservationAt(1, "A", "010-0000-0001", "2024-05-10", "09:00", domain.StatusPending, base),
		reservationAt(2, "B", "010-0000-0002", "2024-05-10", "10:00", domain.StatusPending, base.Add(time.Hour)),
		reservationAt(3, "C", "010-0000-0003", "2024-05-11", "09:00", domain.StatusPending, base.Add(2*time.Hour)),
	)

	resp, err := svc.List(ctx, &models.ListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 3)
	assert.Equal(t, int64(3), resp.Reservations[0].ID)
	assert.Equal(t, int64(2), resp.Reservations[1].ID)
	assert.Equal(t, int64(1), resp.Reservations[2].ID)
}

func TestService_List_Filters(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	now := time.Now()
	seed(t, repo,
		reservationAt(1, "A", "010-0000-0001", "2024-05-10", "09:00", domain.StatusPending, now),
		reservationAt(2, "B", "010-0000-0002", "2024-05-10", "10:00", domain.StatusConfirmed, now),
		reservationAt(3, "C", "010-0000-0003", "2024-05-11", "09:00", domain.StatusConfirmed, now),
	)

	// Фильтр по статусу
	resp, err := svc.List(ctx, &models.ListRequest{Status: ptr.Ptr("confirmed")})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	// "all" эквивалентен отсутствию фильтра
	resp, err = svc.List(ctx, &models.ListRequest{Status: ptr.Ptr("all")})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 3)

	// Фильтр по дате
	resp, err = svc.List(ctx, &models.ListRequest{Date: ptr.Ptr("2024-05-10")})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	// Фильтры комбинируются по И
	resp, err = svc.List(ctx, &models.ListRequest{
		Status: ptr.Ptr("confirmed"),
		Date:   ptr.Ptr("2024-05-10"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(2), resp.Reservations[0].ID)
}

func TestService_List_InvalidFilters(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, &models.ListRequest{Status: ptr.Ptr("approved")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(ctx, &models.ListRequest{Date: ptr.Ptr("10.05.2024")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Stats(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	now := time.Now()
	seed(t, repo,
		reservationAt(1, "A", "010-0000-0001", "2024-05-10", "09:00", domain.StatusPending, now),
		reservationAt(2, "B", "010-0000-0002", "2024-05-10", "10:00", domain.StatusPending, now),
		reservationAt(3, "C", "010-0000-0003", "2024-05-11", "09:00", domain.StatusConfirmed, now),
		reservationAt(4, "D", "010-0000-0004", "2024-05-11", "10:00", domain.StatusRejected, now),
		reservationAt(5, "E", "010-0000-0005", "2024-05-12", "09:00", domain.StatusCancelled, now),
	)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Rejected)
}

func TestService_Edit(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()
	seed(t, repo, reservationAt(1, "홍길동", "010-1111-2222", "2024-05-10", "09:00", domain.StatusConfirmed, time.Now()))

	// Обновляются только переданные поля
	err := svc.Edit(ctx, 1, &models.EditRequest{Phone: ptr.Ptr("010-9999-8888")})
	require.NoError(t, err)

	res, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "홍길동", res.Name)
	assert.Equal(t, "010-9999-8888", res.Phone)
	assert.Equal(t, "confirmed", res.Status)
	assert.Equal(t, "2024-05-10", res.Date)
}

func TestService_Edit_Errors(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()
	seed(t, repo, reservationAt(1, "홍길동", "010-1111-2222", "2024-05-10", "09:00", domain.StatusPending, time.Now()))

	assert.ErrorIs(t, svc.Edit(ctx, 1, &models.EditRequest{}), ErrNoFieldsToEdit)
	assert.ErrorIs(t, svc.Edit(ctx, 99, &models.EditRequest{Name: ptr.Ptr("X")}), ErrReservationNotFound)
}

func TestService_FindMatches(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	now := time.Now()
	seed(t, repo,
		reservationAt(1, "홍길동", "010-1111-2222", "2024-05-10", "09:00", domain.StatusPending, now),
		reservationAt(2, "김철수", "010-3333-4444", "2024-05-10", "10:00", domain.StatusConfirmed, now),
		reservationAt(3, "홍길동", "010-5555-6666", "2024-05-11", "09:00", domain.StatusCancelled, now),
	)

	// Совпадение по имени: обе записи, включая отменённую
	resp, err := svc.FindMatches(ctx, "홍길동", "")
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	// Совпадение по телефону
	resp, err = svc.FindMatches(ctx, "", "010-3333-4444")
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(2), resp.Reservations[0].ID)

	// Включающее ИЛИ: имя одной записи плюс телефон другой
	resp, err = svc.FindMatches(ctx, "김철수", "010-5555-6666")
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	// Нет совпадений
	resp, err = svc.FindMatches(ctx, "없는사람", "")
	require.NoError(t, err)
	assert.Empty(t, resp.Reservations)
}

func TestService_FindMatches_EmptySearch(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.FindMatches(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrEmptySearch)
}

package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

const (
	// reservationsKey ключ, под которым лежит весь список броней (JSON-массив)
	// Частичных обновлений нет: каждая мутация пересериализует список целиком
	reservationsKey = "reservations"

	// changeChannel канал уведомлений об изменении списка броней
	// Аналог события storage в браузере: все открытые поверхности
	// перечитывают список и перерисовываются
	changeChannel = "reservations:changed"
)

// MetricsRecorder интерфейс для учета операций с хранилищем
type MetricsRecorder interface {
	ObserveStorageOp(operation string, err error)
}

// Repository репозиторий списка броней поверх key-value хранилища
type Repository struct {
	client  *redis.Client
	metrics MetricsRecorder
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(client *redis.Client) *Repository {
	return &Repository{client: client}
}

// NewRepositoryWithMetrics создает репозиторий с учетом операций
func NewRepositoryWithMetrics(client *redis.Client, metrics MetricsRecorder) *Repository {
	return &Repository{client: client, metrics: metrics}
}

func (r *Repository) observe(operation string, err error) {
	if r.metrics != nil {
		r.metrics.ObserveStorageOp(operation, err)
	}
}

// Load читает и десериализует полный список броней
// Отсутствующий ключ и некорректный JSON равнозначны пустому списку:
// испорченные данные не должны ронять вызывающую сторону
func (r *Repository) Load(ctx context.Context) ([]domain.Reservation, error) {
	data, err := r.client.Get(ctx, reservationsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			r.observe("load", nil)
			return []domain.Reservation{}, nil
		}
		r.observe("load", err)
		return nil, fmt.Errorf("%w: Load - get key: %v", ErrStorage, err)
	}
	r.observe("load", nil)

	var all []domain.Reservation
	if err := json.Unmarshal(data, &all); err != nil {
		return []domain.Reservation{}, nil
	}
	if all == nil {
		all = []domain.Reservation{}
	}
	return all, nil
}

// Save сериализует и сохраняет полный список броней, замещая прежний,
// затем публикует уведомление об изменении
func (r *Repository) Save(ctx context.Context, all []domain.Reservation) error {
	if all == nil {
		all = []domain.Reservation{}
	}

	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrEncode, err)
	}

	if err := r.client.Set(ctx, reservationsKey, data, 0).Err(); err != nil {
		r.observe("save", err)
		return fmt.Errorf("%w: Save - set key: %v", ErrStorage, err)
	}
	r.observe("save", nil)

	// Уведомление best-effort: недоставка не делает запись неуспешной
	r.client.Publish(ctx, changeChannel, strconv.Itoa(len(all)))

	return nil
}

// Append добавляет одну бронь в конец списка
func (r *Repository) Append(ctx context.Context, res domain.Reservation) error {
	all, err := r.Load(ctx)
	if err != nil {
		return err
	}
	return r.Save(ctx, append(all, res))
}

// GetByID возвращает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	all, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			res := all[i]
			return &res, nil
		}
	}
	return nil, ErrReservationNotFound
}

// UpdateByID находит бронь по ID, применяет мутацию и сохраняет список
// Возвращает false, если бронь не найдена; вызывающая сторона обязана
// проверить результат, отсутствие совпадения не является ошибкой
func (r *Repository) UpdateByID(ctx context.Context, id int64, mutate func(*domain.Reservation)) (bool, error) {
	all, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	for i := range all {
		if all[i].ID == id {
			mutate(&all[i])
			if err := r.Save(ctx, all); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	return false, nil
}

// Watch подписывается на канал уведомлений и вызывает fn на каждое
// изменение списка броней, пока не отменен контекст
// Уведомления доставляются только в пределах одного хранилища и только
// подключенным подписчикам: это best-effort механизм против устаревших
// срезов, а не защита от гонки записей
func (r *Repository) Watch(ctx context.Context, fn func()) error {
	sub := r.client.Subscribe(ctx, changeChannel)
	defer sub.Close()

	// Дожидаемся подтверждения подписки, чтобы не терять ранние публикации
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrSubscribe, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			fn()
		}
	}
}

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ключи административной сессии. adminLoggedIn единственный флаг,
// который проверяется при доступе; username и loginTime информационные
const (
	keyLoggedIn  = "adminLoggedIn"
	keyUsername  = "adminUsername"
	keyLoginTime = "loginTime"
)

// Repository хранит состояние административной сессии в key-value хранилище
// Сессия не имеет срока действия и токена, это флаг присутствия,
// унаследованный от исходного дизайна, а не механизм безопасности
type Repository struct {
	client *redis.Client
}

// NewRepository создает новый экземпляр репозитория сессии
func NewRepository(client *redis.Client) *Repository {
	return &Repository{client: client}
}

// Establish отмечает административную сессию как установленную
func (r *Repository) Establish(ctx context.Context, username string, now time.Time) error {
	err := r.client.MSet(ctx,
		keyLoggedIn, "true",
		keyUsername, username,
		keyLoginTime, now.Format(time.RFC3339),
	).Err()
	if err != nil {
		return fmt.Errorf("session.repository: failed to establish session: %w", err)
	}
	return nil
}

// IsEstablished проверяет наличие установленной административной сессии
func (r *Repository) IsEstablished(ctx context.Context) (bool, error) {
	val, err := r.client.Get(ctx, keyLoggedIn).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("session.repository: failed to read session flag: %w", err)
	}
	return val == "true", nil
}

// Clear снимает административную сессию
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, keyLoggedIn, keyUsername, keyLoginTime).Err(); err != nil {
		return fmt.Errorf("session.repository: failed to clear session: %w", err)
	}
	return nil
}

package auth

import (
	"context"
	"time"
)

// SessionRepository интерфейс хранилища административной сессии
type SessionRepository interface {
	Establish(ctx context.Context, username string, now time.Time) error
	IsEstablished(ctx context.Context) (bool, error)
	Clear(ctx context.Context) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package auth

import (
	"context"
	"fmt"
	"strings"
)

// Service административная "аутентификация", перенесённая из исходного
// дизайна как есть: пароль сравнивается с фиксированной строкой из
// конфигурации, успех фиксируется флагом присутствия в хранилище.
// Границей безопасности не является и не претендует ей быть
type Service struct {
	sessionRepo  SessionRepository
	password     string
	username     string
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса административного доступа
func NewService(sessionRepo SessionRepository, password, username string, logger Logger) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		password:     password,
		username:     username,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login проверяет пароль и устанавливает административную сессию
func (s *Service) Login(ctx context.Context, password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		return ErrPasswordRequired
	}

	if password != s.password {
		s.logger.Warn("Login: invalid admin password attempt")
		return ErrInvalidPassword
	}

	if err := s.sessionRepo.Establish(ctx, s.username, s.timeProvider.Now()); err != nil {
		s.logger.Error("Login: failed to establish session: %v", err)
		return fmt.Errorf("%w: Login - session error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin session established")
	return nil
}

// IsLoggedIn проверяет наличие административной сессии
func (s *Service) IsLoggedIn(ctx context.Context) (bool, error) {
	ok, err := s.sessionRepo.IsEstablished(ctx)
	if err != nil {
		s.logger.Error("IsLoggedIn: failed to read session: %v", err)
		return false, fmt.Errorf("%w: IsLoggedIn - session error: %v", ErrInternal, err)
	}
	return ok, nil
}

// Logout снимает административную сессию
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		s.logger.Error("Logout: failed to clear session: %v", err)
		return fmt.Errorf("%w: Logout - session error: %v", ErrInternal, err)
	}
	s.logger.Info("Logout: admin session cleared")
	return nil
}

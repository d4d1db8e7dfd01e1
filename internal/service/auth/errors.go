package auth

import "errors"

var (
	// ErrPasswordRequired возвращается, когда пароль не передан
	ErrPasswordRequired = errors.New("auth: password is required")

	// ErrInvalidPassword возвращается при неверном пароле администратора
	ErrInvalidPassword = errors.New("auth: invalid password")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)

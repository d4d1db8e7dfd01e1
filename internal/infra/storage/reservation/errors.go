package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrEncode возвращается при ошибке сериализации списка броней
	ErrEncode = errors.New("reservation.repository: failed to encode reservations")

	// ErrStorage возвращается при ошибке обращения к key-value хранилищу
	ErrStorage = errors.New("reservation.repository: storage error")

	// ErrSubscribe возвращается при ошибке подписки на канал уведомлений
	ErrSubscribe = errors.New("reservation.repository: failed to subscribe to change channel")
)

package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("reservations: invalid reservation status")

	// ErrEmptySearch возвращается, когда для поиска не задано ни имя, ни телефон
	ErrEmptySearch = errors.New("reservations: name or phone is required for search")

	// ErrNoFieldsToEdit возвращается, когда запрос на редактирование не содержит полей
	ErrNoFieldsToEdit = errors.New("reservations: no fields to edit")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)

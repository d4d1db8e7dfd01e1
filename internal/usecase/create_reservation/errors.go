package create_reservation

import "errors"

var (
	// ErrSelectionIncomplete возвращается, когда дата или время не выбраны
	ErrSelectionIncomplete = errors.New("create_reservation: date and time must be selected")

	// ErrNameRequired возвращается, когда имя посетителя не указано
	ErrNameRequired = errors.New("create_reservation: name is required")

	// ErrNameTooLong возвращается, когда имя длиннее допустимого
	ErrNameTooLong = errors.New("create_reservation: name is too long")

	// ErrMemoTooLong возвращается, когда заметка длиннее допустимой
	ErrMemoTooLong = errors.New("create_reservation: memo is too long")

	// ErrInvalidDate возвращается при некорректной дате брони
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в дневной набор слотов
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotTaken возвращается, когда слот успел стать занятым между
	// рендером календаря и отправкой формы
	ErrSlotTaken = errors.New("create_reservation: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

package get_time_slots

import "errors"

var (
	// ErrDateRequired возвращается, когда дата не указана
	ErrDateRequired = errors.New("get_time_slots: date is required")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("get_time_slots: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_time_slots: internal error")
)

package get_calendar

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректном номере месяца
	ErrInvalidMonth = errors.New("get_calendar: month must be between 1 and 12")

	// ErrInvalidSurface возвращается при неизвестной поверхности
	ErrInvalidSurface = errors.New("get_calendar: unknown surface")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)

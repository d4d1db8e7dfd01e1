package types

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var (
	// ErrInvalidDateString возвращается при некорректном формате даты (ожидается YYYY-MM-DD)
	ErrInvalidDateString = errors.New("types: invalid date string format")
)

// DateString календарная дата в формате "YYYY-MM-DD" (без времени)
// Сериализуется как обычная строка, сравнение дат лексикографическое
type DateString string

// NewDateString создает DateString из time.Time (отбрасывает время)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// IsZero проверяет, что значение не задано
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет, что строка соответствует формату YYYY-MM-DD
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// Time конвертирует дату в time.Time (полночь, локальная таймзона)
func (d DateString) Time() (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return parsed, nil
}

// IsBefore проверяет, что дата строго раньше other
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

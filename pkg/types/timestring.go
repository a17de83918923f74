package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// Формат времени суток с точностью до секунды
const timeLayout = "15:04:05"

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM:SS")
)

// TimeString время суток в формате "HH:MM:SS".
// Формат фиксированной ширины с ведущими нулями, поэтому лексикографическое
// сравнение строк совпадает с хронологическим порядком в пределах одного дня.
// Это инвариант: все сравнения ниже сделаны через операторы сравнения строк.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только время суток)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки "HH:MM:SS" или "HH:MM"
// Короткая форма нормализуется до секундной точности ("14:30" -> "14:30:00")
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) == 5 {
		s += ":00"
	}
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60))
}

// Validate проверяет, что значение соответствует формату "HH:MM:SS"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM:SS"
func (t TimeString) String() string {
	return string(t)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// InRange возвращает true, если from <= t <= to (границы включительно)
func (t TimeString) InRange(from, to TimeString) bool {
	return string(t) >= string(from) && string(t) <= string(to)
}

// Clock возвращает часы, минуты и секунды
func (t TimeString) Clock() (hour, minute, second int, err error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour(), parsed.Minute(), parsed.Second(), nil
}

// AddMinutes возвращает новое значение со сдвигом на m минут вперёд
// Ошибка, если результат выходит за пределы суток
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	hour, minute, _, err := t.Clock()
	if err != nil {
		return "", err
	}

	total := hour*60 + minute + m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(t), m)
	}

	return NewTimeStringFromMinutes(total), nil
}

// Value реализует driver.Valuer для записи в колонку TIME
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из колонки TIME
// lib/pq возвращает TIME как []byte, но на всякий случай поддерживаем и time.Time
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
		return nil
	case []byte:
		*t = TimeString(v)
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidTimeString, src)
	}
}

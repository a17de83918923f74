package domain

// Интервал генерации слотов
const (
	DefaultSlotIntervalMinutes = 30
)

// Границы валидации
const (
	MinWeekday = 0 // воскресенье
	MaxWeekday = 6 // суббота

	MaxNameLength       = 255
	MaxSpecialityLength = 255
	MaxEmailLength      = 255
	MaxPhoneLength      = 32
)

// Форматы дат
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

package domain

import "github.com/m04kA/SMC-ClinicService/pkg/types"

// TimeSlot временной слот с признаком доступности для конкретного врача и даты
// Не хранится в БД - пересчитывается на каждый запрос
type TimeSlot struct {
	Value       types.TimeString
	IsAvailable bool
}

// GenerateTimeSlots генерирует упорядоченную последовательность слотов на
// полные сутки с фиксированным шагом intervalMinutes.
// Чистая функция: одинаковый результат при каждом вызове, без состояния.
// Для шага 30 минут: "00:00:00", "00:30:00", ..., "23:30:00"
func GenerateTimeSlots(intervalMinutes int) []types.TimeString {
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultSlotIntervalMinutes
	}

	slots := make([]types.TimeString, 0, 24*60/intervalMinutes)
	for minutes := 0; minutes < 24*60; minutes += intervalMinutes {
		slots = append(slots, types.NewTimeStringFromMinutes(minutes))
	}
	return slots
}

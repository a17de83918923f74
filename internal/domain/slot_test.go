package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots(DefaultSlotIntervalMinutes)

	require.Len(t, slots, 48)
	assert.Equal(t, types.TimeString("00:00:00"), slots[0])
	assert.Equal(t, types.TimeString("00:30:00"), slots[1])
	assert.Equal(t, types.TimeString("12:00:00"), slots[24])
	assert.Equal(t, types.TimeString("23:30:00"), slots[47])

	// Слоты строго возрастают
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]),
			"slot %s must be before %s", slots[i-1], slots[i])
	}
}

func TestGenerateTimeSlots_FallbackInterval(t *testing.T) {
	// Некорректный шаг заменяется дефолтным
	assert.Len(t, GenerateTimeSlots(0), 48)
	assert.Len(t, GenerateTimeSlots(-15), 48)
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	assert.Equal(t, GenerateTimeSlots(30), GenerateTimeSlots(30))
}

func TestDoctor_IsAvailableOnWeekday(t *testing.T) {
	// Понедельник - пятница
	doctor := &Doctor{
		AvailableFromWeekday: 1,
		AvailableToWeekday:   5,
	}

	assert.False(t, doctor.IsAvailableOnWeekday(0)) // воскресенье
	assert.True(t, doctor.IsAvailableOnWeekday(1))  // граница включительно
	assert.True(t, doctor.IsAvailableOnWeekday(3))
	assert.True(t, doctor.IsAvailableOnWeekday(5)) // граница включительно
	assert.False(t, doctor.IsAvailableOnWeekday(6))
}

func TestDoctor_WorksAt(t *testing.T) {
	doctor := &Doctor{
		AvailableFromTime: "09:00:00",
		AvailableToTime:   "18:00:00",
	}

	assert.True(t, doctor.WorksAt("09:00:00"))
	assert.True(t, doctor.WorksAt("18:00:00"))
	assert.True(t, doctor.WorksAt("12:30:00"))
	assert.False(t, doctor.WorksAt("08:30:00"))
	assert.False(t, doctor.WorksAt("18:30:00"))
}

func TestAppointment_IsOnDate(t *testing.T) {
	appointment := &Appointment{
		Date: time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC),
	}

	assert.True(t, appointment.IsOnDate(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)))
	// Другой день, месяц, год - не совпадают даже при одинаковом времени суток
	assert.False(t, appointment.IsOnDate(time.Date(2025, 10, 16, 9, 30, 0, 0, time.UTC)))
	assert.False(t, appointment.IsOnDate(time.Date(2025, 11, 15, 9, 30, 0, 0, time.UTC)))
	assert.False(t, appointment.IsOnDate(time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)))
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	combined, err := CombineDateTime(date, "09:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC), combined)
	assert.Zero(t, combined.Nanosecond())

	_, err = CombineDateTime(date, "bad")
	assert.Error(t, err)
}

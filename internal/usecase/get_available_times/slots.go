package get_available_times

import (
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// buildDaySlots строит итоговый список слотов врача на дату
//
// Шаги:
//  1. генерируем полную суточную сетку слотов с фиксированным шагом;
//  2. оставляем слоты внутри окна врача [fromTime, toTime], границы
//     включительно; сравнение - строковое по "HH:MM:SS" (для значений одного
//     дня лексикографический порядок совпадает с хронологическим);
//  3. слот помечается занятым, если на эту дату у врача уже есть запись
//     с тем же временем суток с точностью до секунды.
func buildDaySlots(doctor *domain.Doctor, date time.Time, appointments []*domain.Appointment) []domain.TimeSlot {
	booked := bookedTimesOnDate(appointments, date)

	allSlots := domain.GenerateTimeSlots(domain.DefaultSlotIntervalMinutes)

	result := make([]domain.TimeSlot, 0, len(allSlots))
	for _, slot := range allSlots {
		if !doctor.WorksAt(slot) {
			continue
		}
		_, isBooked := booked[slot]
		result = append(result, domain.TimeSlot{
			Value:       slot,
			IsAvailable: !isBooked,
		})
	}

	return result
}

// bookedTimesOnDate собирает времена суток занятых слотов на указанную дату
// Записи на другие календарные даты не учитываются, даже с тем же временем суток
func bookedTimesOnDate(appointments []*domain.Appointment, date time.Time) map[types.TimeString]struct{} {
	booked := make(map[types.TimeString]struct{})
	for _, appointment := range appointments {
		if appointment.IsOnDate(date) {
			booked[appointment.TimeOfDay()] = struct{}{}
		}
	}
	return booked
}

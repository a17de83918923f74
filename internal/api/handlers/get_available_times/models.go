package get_available_times

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	availableTimes "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_times"
)

// TimeSlotResponse один слот расписания врача
type TimeSlotResponse struct {
	Value       string `json:"value"` // "09:00:00"
	IsAvailable bool   `json:"available"`
}

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	DoctorID uuid.UUID          `json:"doctorId"`
	Date     string             `json:"date"` // "2025-10-15"
	Slots    []TimeSlotResponse `json:"slots"`
}

// ToUseCaseRequest собирает модель use case из параметров запроса
func ToUseCaseRequest(userID, clinicID, doctorID uuid.UUID, rawDate string) (*availableTimes.Request, error) {
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		return nil, err
	}

	return &availableTimes.Request{
		UserID:   userID,
		ClinicID: clinicID,
		DoctorID: doctorID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *availableTimes.Response) *AvailableTimesResponse {
	slots := make([]TimeSlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, TimeSlotResponse{
			Value:       slot.Value.String(),
			IsAvailable: slot.IsAvailable,
		})
	}

	return &AvailableTimesResponse{
		DoctorID: resp.DoctorID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}

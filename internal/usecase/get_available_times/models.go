package get_available_times

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// Request модель запроса на получение доступных слотов врача
type Request struct {
	UserID   uuid.UUID // ID пользователя (для логирования, на результат не влияет)
	ClinicID uuid.UUID // ID клиники из контекста аутентификации
	DoctorID uuid.UUID // ID врача
	Date     time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со слотами на день
type Response struct {
	DoctorID uuid.UUID         // ID врача
	Date     time.Time         // Дата, на которую запрашивались слоты
	Slots    []domain.TimeSlot // Слоты в порядке возрастания времени
}

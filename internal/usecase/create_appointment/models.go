package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// Request модель запроса на создание записи на приём
type Request struct {
	UserID     uuid.UUID        // ID пользователя (для логирования)
	ClinicID   uuid.UUID        // ID клиники из контекста аутентификации, НЕ из тела запроса
	PatientID  uuid.UUID        // ID пациента
	DoctorID   uuid.UUID        // ID врача
	Date       time.Time        // Календарная дата приёма (без времени)
	StartTime  types.TimeString // Выбранный слот ("HH:MM:SS")
	PriceCents int              // Цена приёма в копейках (снимок на момент записи)
}

// Response модель ответа с созданной записью
type Response struct {
	ID         uuid.UUID // ID созданной записи
	ClinicID   uuid.UUID // ID клиники
	PatientID  uuid.UUID // ID пациента
	DoctorID   uuid.UUID // ID врача
	Date       time.Time // Абсолютная метка времени приёма (дата + слот)
	PriceCents int       // Снимок цены
	CreatedAt  time.Time // Время создания
	UpdatedAt  time.Time // Время обновления
}

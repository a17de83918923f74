package upsert_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/internal/service/appointments"
	"github.com/m04kA/SMC-ClinicService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAppointmentNotFound = "запись на приём не найдена"
	msgDoctorNotFound      = "врач не найден"
	msgPatientNotFound     = "пациент не найден"
	msgInvalidRequest      = "некорректные параметры запроса"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments
// Легаси-вариант записи: доступность слота не проверяется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	clinicID, _ := middleware.ClinicID(r.Context())

	var req models.UpsertAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.DateRaw)
	if err != nil {
		h.logger.Warn("PUT /appointments - Invalid date %q: %v", req.DateRaw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req.UserID = userID
	req.ClinicID = clinicID
	req.Date = date

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments - Appointment not found: clinic_id=%s", clinicID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrDoctorNotFound):
			h.logger.Warn("PUT /appointments - Doctor not found: doctor_id=%s, clinic_id=%s", req.DoctorID, clinicID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, appointments.ErrPatientNotFound):
			h.logger.Warn("PUT /appointments - Patient not found: patient_id=%s, clinic_id=%s", req.PatientID, clinicID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PUT /appointments - Invalid input: clinic_id=%s, error=%v", clinicID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("PUT /appointments - Failed to upsert appointment: clinic_id=%s, error=%v", clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments - Appointment upserted successfully: appointment_id=%s, clinic_id=%s",
		result.ID, clinicID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

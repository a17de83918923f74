package upsert_patient

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicService/internal/service/patients"
	"github.com/m04kA/SMC-ClinicService/internal/service/patients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPatientNotFound    = "пациент не найден"
	msgClinicNotFound     = "клиника не найдена"
	msgEmailTaken         = "email уже используется другим пациентом"
	msgInvalidRequest     = "некорректные параметры запроса"
)

type Handler struct {
	service PatientService
	logger  Logger
}

func NewHandler(service PatientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/patients
// Создаёт пациента либо обновляет существующего, если в теле передан id
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	clinicID, _ := middleware.ClinicID(r.Context())

	var req models.UpsertPatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /patients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.UserID = userID
	req.ClinicID = clinicID

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, patients.ErrPatientNotFound):
			h.logger.Warn("POST /patients - Patient not found: clinic_id=%s", clinicID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, patients.ErrClinicNotFound):
			h.logger.Warn("POST /patients - Clinic not found: clinic_id=%s", clinicID)
			handlers.RespondNotFound(w, msgClinicNotFound)

		case errors.Is(err, patients.ErrEmailTaken):
			h.logger.Warn("POST /patients - Email already in use: clinic_id=%s", clinicID)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		case errors.Is(err, patients.ErrInvalidInput):
			h.logger.Warn("POST /patients - Invalid input: clinic_id=%s, error=%v", clinicID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /patients - Failed to upsert patient: clinic_id=%s, error=%v", clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /patients - Patient upserted successfully: patient_id=%s, clinic_id=%s", result.ID, clinicID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package upsert_doctor

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicService/internal/service/doctors"
	"github.com/m04kA/SMC-ClinicService/internal/service/doctors/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgDoctorNotFound      = "врач не найден"
	msgClinicNotFound      = "клиника не найдена"
	msgInvalidAvailability = "некорректный график приёма врача"
	msgInvalidRequest      = "некорректные параметры запроса"
)

type Handler struct {
	service DoctorService
	logger  Logger
}

func NewHandler(service DoctorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/doctors
// Создаёт врача либо обновляет существующего, если в теле передан id
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	clinicID, _ := middleware.ClinicID(r.Context())

	var req models.UpsertDoctorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /doctors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.UserID = userID
	req.ClinicID = clinicID

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, doctors.ErrDoctorNotFound):
			h.logger.Warn("POST /doctors - Doctor not found: clinic_id=%s", clinicID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, doctors.ErrClinicNotFound):
			h.logger.Warn("POST /doctors - Clinic not found: clinic_id=%s", clinicID)
			handlers.RespondNotFound(w, msgClinicNotFound)

		case errors.Is(err, doctors.ErrInvalidAvailability):
			h.logger.Warn("POST /doctors - Invalid availability: clinic_id=%s, error=%v", clinicID, err)
			handlers.RespondBadRequest(w, msgInvalidAvailability)

		case errors.Is(err, doctors.ErrInvalidInput):
			h.logger.Warn("POST /doctors - Invalid input: clinic_id=%s, error=%v", clinicID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /doctors - Failed to upsert doctor: clinic_id=%s, error=%v", clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /doctors - Doctor upserted successfully: doctor_id=%s, clinic_id=%s", result.ID, clinicID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package delete_patient

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicService/internal/service/patients"
)

const (
	msgInvalidPatientID = "некорректный идентификатор пациента"
	msgPatientNotFound  = "пациент не найден"
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

// Handle DELETE /api/v1/patients/{patientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clinicID, _ := middleware.ClinicID(r.Context())

	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		h.logger.Warn("DELETE /patients/{patientId} - Invalid patient id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	if err := h.service.Delete(r.Context(), patientID, clinicID); err != nil {
		if errors.Is(err, patients.ErrPatientNotFound) {
			h.logger.Warn("DELETE /patients/{patientId} - Patient not found: patient_id=%s, clinic_id=%s",
				patientID, clinicID)
			handlers.RespondNotFound(w, msgPatientNotFound)
			return
		}
		h.logger.Error("DELETE /patients/{patientId} - Failed to delete patient: patient_id=%s, error=%v",
			patientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /patients/{patientId} - Patient deleted successfully: patient_id=%s, clinic_id=%s",
		patientID, clinicID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

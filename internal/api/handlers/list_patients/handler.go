package list_patients

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
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

// Handle GET /api/v1/patients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clinicID, _ := middleware.ClinicID(r.Context())

	result, err := h.service.List(r.Context(), clinicID)
	if err != nil {
		h.logger.Error("GET /patients - Failed to list patients: clinic_id=%s, error=%v", clinicID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /patients - Listed %d patients: clinic_id=%s", len(result.Patients), clinicID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package list_doctors

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
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

// Handle GET /api/v1/doctors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clinicID, _ := middleware.ClinicID(r.Context())

	result, err := h.service.List(r.Context(), clinicID)
	if err != nil {
		h.logger.Error("GET /doctors - Failed to list doctors: clinic_id=%s, error=%v", clinicID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors - Listed %d doctors: clinic_id=%s", len(result.Doctors), clinicID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

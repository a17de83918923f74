package list_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
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

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clinicID, _ := middleware.ClinicID(r.Context())

	result, err := h.service.List(r.Context(), clinicID)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: clinic_id=%s, error=%v", clinicID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Listed %d appointments: clinic_id=%s", len(result.Appointments), clinicID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

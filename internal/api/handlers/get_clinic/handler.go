package get_clinic

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicService/internal/service/clinics"
)

const msgClinicNotFound = "клиника не найдена"

type Handler struct {
	service ClinicService
	logger  Logger
}

func NewHandler(service ClinicService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clinic
// Возвращает клинику из контекста текущего запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clinicID, _ := middleware.ClinicID(r.Context())

	result, err := h.service.GetByID(r.Context(), clinicID)
	if err != nil {
		if errors.Is(err, clinics.ErrClinicNotFound) {
			h.logger.Warn("GET /clinic - Clinic not found: clinic_id=%s", clinicID)
			handlers.RespondNotFound(w, msgClinicNotFound)
			return
		}
		h.logger.Error("GET /clinic - Failed to fetch clinic: clinic_id=%s, error=%v", clinicID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clinic - Clinic fetched successfully: clinic_id=%s", clinicID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package delete_doctor

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicService/internal/service/doctors"
)

const (
	msgInvalidDoctorID = "некорректный идентификатор врача"
	msgDoctorNotFound  = "врач не найден"
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

// Handle DELETE /api/v1/doctors/{doctorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clinicID, _ := middleware.ClinicID(r.Context())

	doctorID, err := uuid.Parse(mux.Vars(r)["doctorId"])
	if err != nil {
		h.logger.Warn("DELETE /doctors/{doctorId} - Invalid doctor id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	if err := h.service.Delete(r.Context(), doctorID, clinicID); err != nil {
		if errors.Is(err, doctors.ErrDoctorNotFound) {
			h.logger.Warn("DELETE /doctors/{doctorId} - Doctor not found: doctor_id=%s, clinic_id=%s",
				doctorID, clinicID)
			handlers.RespondNotFound(w, msgDoctorNotFound)
			return
		}
		h.logger.Error("DELETE /doctors/{doctorId} - Failed to delete doctor: doctor_id=%s, error=%v", doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /doctors/{doctorId} - Doctor deleted successfully: doctor_id=%s, clinic_id=%s",
		doctorID, clinicID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

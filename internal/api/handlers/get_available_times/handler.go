package get_available_times

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
	availableTimes "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_times"
)

const (
	msgInvalidDoctorID = "некорректный идентификатор врача"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate     = "параметр date обязателен"
	msgDoctorNotFound  = "врач не найден"
	msgInvalidRequest  = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/available-times?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	clinicID, _ := middleware.ClinicID(r.Context())

	doctorID, err := uuid.Parse(mux.Vars(r)["doctorId"])
	if err != nil {
		h.logger.Warn("GET /doctors/{doctorId}/available-times - Invalid doctor id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /doctors/{doctorId}/available-times - Missing date parameter: doctor_id=%s", doctorID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(userID, clinicID, doctorID, rawDate)
	if err != nil {
		h.logger.Warn("GET /doctors/{doctorId}/available-times - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, availableTimes.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{doctorId}/available-times - Doctor not found: doctor_id=%s, clinic_id=%s",
				doctorID, clinicID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, availableTimes.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{doctorId}/available-times - Invalid input: doctor_id=%s, error=%v",
				doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /doctors/{doctorId}/available-times - Failed to compute slots: doctor_id=%s, error=%v",
				doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{doctorId}/available-times - Computed %d slots: doctor_id=%s, date=%s",
		len(result.Slots), doctorID, rawDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
)

// Заголовки аутентификации, проставляются API-гейтвеем
const (
	HeaderUserID   = "X-User-ID"
	HeaderClinicID = "X-Clinic-ID"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	clinicIDKey contextKey = "clinicID"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth извлекает идентификаторы пользователя и клиники из заголовков запроса
// и кладёт их в контекст. Запрос без валидного X-User-ID отклоняется с 401.
//
// X-Clinic-ID опционален на этом уровне: ручки, требующие контекст клиники,
// дополнительно оборачиваются в RequireClinic.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := uuid.Parse(r.Header.Get(HeaderUserID))
			if err != nil || userID == uuid.Nil {
				logger.Warn("%s %s - missing or invalid %s header", r.Method, r.URL.Path, HeaderUserID)
				handlers.RespondUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)

			if raw := r.Header.Get(HeaderClinicID); raw != "" {
				clinicID, err := uuid.Parse(raw)
				if err != nil || clinicID == uuid.Nil {
					logger.Warn("%s %s - invalid %s header", r.Method, r.URL.Path, HeaderClinicID)
					handlers.RespondUnauthorized(w)
					return
				}
				ctx = context.WithValue(ctx, clinicIDKey, clinicID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireClinic отклоняет запросы без контекста клиники
// Отсутствие привязки к клинике неотличимо от отсутствия аутентификации
func RequireClinic(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ClinicID(r.Context()); !ok {
				logger.Warn("%s %s - request without clinic context", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserID возвращает ID пользователя из контекста запроса
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// ClinicID возвращает ID клиники из контекста запроса
func ClinicID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(clinicIDKey).(uuid.UUID)
	return id, ok
}

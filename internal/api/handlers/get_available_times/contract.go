package get_available_times

import (
	"context"

	availableTimes "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_times"
)

type GetAvailableTimesUseCase interface {
	Execute(ctx context.Context, req *availableTimes.Request) (*availableTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

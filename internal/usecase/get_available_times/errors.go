package get_available_times

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден или принадлежит другой клинике
	ErrDoctorNotFound = errors.New("get_available_times: doctor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_times: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_times: internal error")
)

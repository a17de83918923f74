package create_appointment

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("create_appointment: doctor not found")

	// ErrPatientNotFound возвращается, когда пациент не найден или принадлежит другой клинике
	ErrPatientNotFound = errors.New("create_appointment: patient not found")

	// ErrSlotNotAvailable возвращается, когда выбранный слот отсутствует в
	// актуальной выдаче доступности или уже занят. Вызывающий должен заново
	// запросить доступные слоты и перевыбрать время, а не повторять запрос вслепую
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

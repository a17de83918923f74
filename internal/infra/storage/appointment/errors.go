package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись на приём не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrDoctorMissing возвращается, когда врач из записи не существует
	ErrDoctorMissing = errors.New("appointment.repository: referenced doctor does not exist")

	// ErrPatientMissing возвращается, когда пациент из записи не существует
	ErrPatientMissing = errors.New("appointment.repository: referenced patient does not exist")

	// ErrClinicMissing возвращается, когда клиника из записи не существует
	ErrClinicMissing = errors.New("appointment.repository: referenced clinic does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)

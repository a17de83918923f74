package patient

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("patient.repository: patient not found")

	// ErrEmailTaken возвращается, когда email уже занят другим пациентом
	ErrEmailTaken = errors.New("patient.repository: email already in use")

	// ErrClinicMissing возвращается, когда клиника из записи пациента не существует
	ErrClinicMissing = errors.New("patient.repository: referenced clinic does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("patient.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("patient.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("patient.repository: failed to scan row")
)

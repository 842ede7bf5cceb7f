package centre

import "errors"

var (
	// ErrCentreNotFound возвращается, когда центр не найден
	ErrCentreNotFound = errors.New("centre.repository: centre not found")

	// ErrSportNotFound возвращается, когда вид спорта не найден в центре
	ErrSportNotFound = errors.New("centre.repository: sport not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("centre.repository: court not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("centre.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("centre.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("centre.repository: failed to scan row")
)

package get_available_slots

import "errors"

var (
	// ErrCentreNotFound возвращается, когда центр не найден
	ErrCentreNotFound = errors.New("centre not found")

	// ErrSportNotFound возвращается, когда вид спорта не найден в центре
	ErrSportNotFound = errors.New("sport not found in centre")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found for sport")

	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)

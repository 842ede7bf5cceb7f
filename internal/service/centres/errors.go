package centres

import "errors"

var (
	// ErrCentreNotFound возвращается, когда центр не найден
	ErrCentreNotFound = errors.New("centre not found")

	// ErrSportNotFound возвращается, когда вид спорта не найден
	ErrSportNotFound = errors.New("sport not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

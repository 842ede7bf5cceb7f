package create_booking

import "errors"

var (
	// ErrCentreNotFound возвращается, когда центр не найден
	ErrCentreNotFound = errors.New("centre not found")

	// ErrSportNotFound возвращается, когда вид спорта не найден в центре
	ErrSportNotFound = errors.New("sport not found in centre")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found for sport")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrSlotAlreadyBooked возвращается, когда запрошенный интервал
	// пересекается с существующим бронированием корта
	ErrSlotAlreadyBooked = errors.New("slot already booked")

	// ErrOutsideOperatingHours возвращается, когда интервал выходит
	// за рабочие часы площадки
	ErrOutsideOperatingHours = errors.New("requested time is outside operating hours")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)

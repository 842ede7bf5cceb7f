package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// Форматы для писем и экранов бронирований: "Wednesday, 25/12/2024", "09:00 AM"
	DisplayDateFormat = "Monday, 02/01/2006"
	DisplayTimeFormat = "03:04 PM"
)

// OperatingZone единый рабочий часовой пояс всех площадок (IST, UTC+05:30).
// Все границы дней и слотов считаются в нём, а не в поясе сервера.
// Фиксированное смещение: в IST нет перехода на летнее время,
// и арифметика не зависит от tzdata хоста.
var OperatingZone = time.FixedZone("IST", 5*3600+30*60)

// Default slot policy values
const (
	DefaultOpenTime        = "08:00"
	DefaultCloseTime       = "20:00"
	DefaultSlotStepMinutes = 60
)

// Business validation constants
const (
	MinSlotStepMinutes = 5
	MaxSlotStepMinutes = 480 // 8 hours

	MaxNameLength     = 120
	MaxLocationLength = 255
	MinPasswordLength = 8
)

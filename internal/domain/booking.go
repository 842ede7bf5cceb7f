package domain

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/timeutil"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// Booking represents a reservation of a court for a time window on a date.
// Ссылки на центр и вид спорта денормализованы для выборок, но обязаны быть
// согласованы: court принадлежит sport, sport принадлежит centre.
type Booking struct {
	ID       int64
	CentreID int64
	SportID  int64
	CourtID  int64
	UserID   int64

	// BookingDate календарная дата в рабочем поясе (время в значении игнорируется)
	BookingDate time.Time
	// StartTime/EndTime локальное время суток; интервал полуоткрытый [start, end)
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedAt time.Time
}

// StartInstant returns the absolute start of the booking in the operating zone
func (b *Booking) StartInstant() (time.Time, error) {
	return timeutil.CombineDateAndTime(b.BookingDate, b.StartTime, OperatingZone)
}

// EndInstant returns the absolute end of the booking in the operating zone
func (b *Booking) EndInstant() (time.Time, error) {
	return timeutil.CombineDateAndTime(b.BookingDate, b.EndTime, OperatingZone)
}

// IsPast returns true if the booking has already ended at the given instant.
// Состояние "completed" нигде не хранится, оно всегда выводится из времени.
func (b *Booking) IsPast(now time.Time) bool {
	end, err := b.EndInstant()
	if err != nil {
		return false
	}
	return !end.After(now)
}

// OverlapsWindow returns true if the booking interval overlaps [start, end)
func (b *Booking) OverlapsWindow(start, end types.TimeString) bool {
	return timeutil.OverlapsTimeOfDay(b.StartTime, b.EndTime, start, end)
}

// FormattedDate renders the booking date for display, e.g. "Wednesday, 25/12/2024"
func (b *Booking) FormattedDate() string {
	return b.BookingDate.In(OperatingZone).Format(DisplayDateFormat)
}

// FormattedStartTime renders the start in 12-hour clock, e.g. "09:00 AM"
func (b *Booking) FormattedStartTime() string {
	return formatTimeOfDay(b.BookingDate, b.StartTime)
}

// FormattedEndTime renders the end in 12-hour clock, e.g. "10:00 AM"
func (b *Booking) FormattedEndTime() string {
	return formatTimeOfDay(b.BookingDate, b.EndTime)
}

// formatTimeOfDay рендерит время суток через рабочий пояс, а не через
// локальный пояс процесса
func formatTimeOfDay(date time.Time, t types.TimeString) string {
	instant, err := timeutil.CombineDateAndTime(date, t, OperatingZone)
	if err != nil {
		return t.String()
	}
	return instant.Format(DisplayTimeFormat)
}

// BookingDetails is a booking joined with the display names of its references
type BookingDetails struct {
	Booking

	CentreName     string
	CentreLocation string
	SportName      string
	CourtName      string
	UserName       string
	UserEmail      string
}

// BookingsFilter фильтр для выборки всех бронирований (менеджерский обзор)
type BookingsFilter struct {
	CentreID  *int64     // Фильтр по центру (опционально)
	StartDate *time.Time // Начало периода (опционально)
	EndDate   *time.Time // Конец периода (опционально)
}

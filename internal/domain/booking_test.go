package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_Formatting(t *testing.T) {
	booking := &Booking{
		BookingDate: time.Date(2024, 12, 25, 0, 0, 0, 0, OperatingZone),
		StartTime:   "09:00",
		EndTime:     "10:00",
	}

	// Рендеринг идёт через рабочий пояс и не зависит от пояса машины
	assert.Equal(t, "09:00 AM", booking.FormattedStartTime())
	assert.Equal(t, "10:00 AM", booking.FormattedEndTime())
	assert.Equal(t, "Wednesday, 25/12/2024", booking.FormattedDate())
}

func TestBooking_Formatting_Afternoon(t *testing.T) {
	booking := &Booking{
		BookingDate: time.Date(2025, 1, 4, 0, 0, 0, 0, OperatingZone),
		StartTime:   "19:00",
		EndTime:     "20:00",
	}

	assert.Equal(t, "07:00 PM", booking.FormattedStartTime())
	assert.Equal(t, "08:00 PM", booking.FormattedEndTime())
	assert.Equal(t, "Saturday, 04/01/2025", booking.FormattedDate())
}

func TestBooking_Instants(t *testing.T) {
	booking := &Booking{
		BookingDate: time.Date(2024, 12, 25, 0, 0, 0, 0, OperatingZone),
		StartTime:   "09:00",
		EndTime:     "10:00",
	}

	start, err := booking.StartInstant()
	require.NoError(t, err)
	end, err := booking.EndInstant()
	require.NoError(t, err)

	// 09:00 IST = 03:30 UTC
	assert.Equal(t, "2024-12-25T03:30:00Z", start.UTC().Format(time.RFC3339))
	assert.Equal(t, "2024-12-25T04:30:00Z", end.UTC().Format(time.RFC3339))
	assert.True(t, start.Before(end))
}

func TestBooking_IsPast(t *testing.T) {
	booking := &Booking{
		BookingDate: time.Date(2024, 12, 25, 0, 0, 0, 0, OperatingZone),
		StartTime:   "09:00",
		EndTime:     "10:00",
	}

	before := time.Date(2024, 12, 25, 9, 59, 0, 0, OperatingZone)
	atEnd := time.Date(2024, 12, 25, 10, 0, 0, 0, OperatingZone)
	after := time.Date(2024, 12, 26, 0, 0, 0, 0, OperatingZone)

	assert.False(t, booking.IsPast(before))
	// Конец интервала не включается: в момент end бронирование уже завершено
	assert.True(t, booking.IsPast(atEnd))
	assert.True(t, booking.IsPast(after))
}

func TestBooking_OverlapsWindow(t *testing.T) {
	booking := &Booking{StartTime: "14:30", EndTime: "15:30"}

	assert.True(t, booking.OverlapsWindow("14:00", "15:00"))
	assert.True(t, booking.OverlapsWindow("15:00", "16:00"))
	assert.True(t, booking.OverlapsWindow("14:00", "16:00"))
	assert.False(t, booking.OverlapsWindow("13:30", "14:30"))
	assert.False(t, booking.OverlapsWindow("15:30", "16:30"))
}

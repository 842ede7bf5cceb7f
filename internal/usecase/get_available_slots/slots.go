package get_available_slots

import (
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/pkg/timeutil"
)

// buildSlots строит сетку слотов на день и помечает занятые.
// Слот занят, если он строго пересекается хотя бы с одним бронированием:
// границы слотов не считаются пересечением, бронирование 10:00-11:00
// не трогает слоты 09:00-10:00 и 11:00-12:00.
func buildSlots(policy domain.SlotPolicy, date time.Time, bookings []*domain.Booking) ([]Slot, error) {
	grid, err := policy.GenerateSlots()
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, len(grid))
	for _, cell := range grid {
		start, err := timeutil.CombineDateAndTime(date, cell.StartTime, domain.OperatingZone)
		if err != nil {
			return nil, err
		}
		end, err := timeutil.CombineDateAndTime(date, cell.EndTime, domain.OperatingZone)
		if err != nil {
			return nil, err
		}

		slot := Slot{
			StartTime:        cell.StartTime,
			EndTime:          cell.EndTime,
			StartDateTimeIST: start.Format(time.RFC3339),
			EndDateTimeIST:   end.Format(time.RFC3339),
		}

		for _, booking := range bookings {
			if booking.OverlapsWindow(cell.StartTime, cell.EndTime) {
				slot.Booked = true
				break
			}
		}

		slots = append(slots, slot)
	}

	return slots, nil
}

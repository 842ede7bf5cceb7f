package timeutil

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// CombineDateAndTime собирает абсолютный момент времени из календарной даты
// и локального времени суток в указанном часовом поясе.
// Часовой пояс исполняющей машины не участвует в вычислении.
func CombineDateAndTime(date time.Time, t types.TimeString, loc *time.Location) (time.Time, error) {
	if err := t.Validate(); err != nil {
		return time.Time{}, err
	}

	year, month, day := date.Date()
	return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, loc), nil
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Интервалы, граничащие концами, пересечением не считаются.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// OverlapsTimeOfDay проверяет пересечение двух полуоткрытых интервалов
// локального времени в пределах одних суток.
func OverlapsTimeOfDay(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}

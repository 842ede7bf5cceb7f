package get_available_slots

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	CentreID int64     // ID центра
	SportID  int64     // ID вида спорта
	CourtID  int64     // ID корта
	Date     time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со слотами корта на день
type Response struct {
	Date     time.Time `json:"-"`
	CentreID int64     `json:"centreId"`
	SportID  int64     `json:"sportId"`
	CourtID  int64     `json:"courtId"`
	Slots    []Slot    `json:"slots"`
}

// Slot временной слот сетки корта.
// Занятые слоты тоже возвращаются, клиент отличает их по флагу Booked.
type Slot struct {
	StartTime        types.TimeString `json:"startTime"`
	EndTime          types.TimeString `json:"endTime"`
	StartDateTimeIST string           `json:"startDateTimeIST"`
	EndDateTimeIST   string           `json:"endDateTimeIST"`
	Booked           bool             `json:"booked"`
}

package get_available_slots

import (
	"github.com/quickcourt/QC-BookingService/internal/domain"
	getSlots "github.com/quickcourt/QC-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	StartDateTimeIST string `json:"startDateTimeIST"`
	EndDateTimeIST   string `json:"endDateTimeIST"`
	Booked           bool   `json:"booked"`
}

// AvailableSlotsResponse HTTP модель ответа со слотами на день
type AvailableSlotsResponse struct {
	Date     string         `json:"date"`
	CentreID int64          `json:"centreId"`
	SportID  int64          `json:"sportId"`
	CourtID  int64          `json:"courtId"`
	Slots    []SlotResponse `json:"availableSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:        s.StartTime.String(),
			EndTime:          s.EndTime.String(),
			StartDateTimeIST: s.StartDateTimeIST,
			EndDateTimeIST:   s.EndDateTimeIST,
			Booked:           s.Booked,
		})
	}

	return &AvailableSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		CentreID: resp.CentreID,
		SportID:  resp.SportID,
		CourtID:  resp.CourtID,
		Slots:    slots,
	}
}

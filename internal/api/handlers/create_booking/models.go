package create_booking

import (
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	createBooking "github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CentreID int64  `json:"centreId"`
	SportID  int64  `json:"sportId"`
	CourtID  int64  `json:"courtId"`
	Date     string `json:"date"`              // "2025-10-15"
	Start    string `json:"startTime"`         // "10:00"
	End      string `json:"endTime,omitempty"` // пусто значит start + шаг сетки
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking *createBooking.Response `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.Start)
	if err != nil {
		return nil, err
	}

	var end types.TimeString
	if r.End != "" {
		end, err = types.NewTimeStringFromString(r.End)
		if err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		UserID:   userID,
		CentreID: r.CentreID,
		SportID:  r.SportID,
		CourtID:  r.CourtID,
		Date:     date,
		Start:    start,
		End:      end,
	}, nil
}

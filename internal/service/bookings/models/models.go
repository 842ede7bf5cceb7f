package models

import (
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

// Request модели

// GetAllBookingsRequest запрос менеджерского обзора бронирований
type GetAllBookingsRequest struct {
	CentreID  *int64     `json:"centreId,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAllBookingsRequest) ToDomainFilter() domain.BookingsFilter {
	return domain.BookingsFilter{
		CentreID:  r.CentreID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// Response модели

// BookingResponse бронирование в представлении для клиента.
// Дата и время отформатированы для показа человеку, машиночитаемые
// моменты приложены отдельными RFC3339 полями в IST.
type BookingResponse struct {
	ID               int64  `json:"id"`
	CentreID         int64  `json:"centreId"`
	SportID          int64  `json:"sportId"`
	CourtID          int64  `json:"courtId"`
	UserID           int64  `json:"userId"`
	CentreName       string `json:"centreName"`
	CentreLocation   string `json:"centreLocation"`
	SportName        string `json:"sportName"`
	CourtName        string `json:"courtName"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	StartDateTimeIST string `json:"startDateTimeIST"`
	EndDateTimeIST   string `json:"endDateTimeIST"`
	Status           string `json:"status"`

	// Данные клиента, заполняются только в менеджерском обзоре
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// Статусы вычисляются от текущего момента, в БД не хранятся
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// FromDomainDetails конвертирует доменное бронирование в response
func FromDomainDetails(d *domain.BookingDetails, now time.Time, withCustomer bool) *BookingResponse {
	resp := &BookingResponse{
		ID:             d.ID,
		CentreID:       d.CentreID,
		SportID:        d.SportID,
		CourtID:        d.CourtID,
		UserID:         d.UserID,
		CentreName:     d.CentreName,
		CentreLocation: d.CentreLocation,
		SportName:      d.SportName,
		CourtName:      d.CourtName,
		Date:           d.FormattedDate(),
		StartTime:      d.FormattedStartTime(),
		EndTime:        d.FormattedEndTime(),
		Status:         bookingStatus(&d.Booking, now),
	}

	if start, err := d.StartInstant(); err == nil {
		resp.StartDateTimeIST = start.Format(time.RFC3339)
	}
	if end, err := d.EndInstant(); err == nil {
		resp.EndDateTimeIST = end.Format(time.RFC3339)
	}

	if withCustomer {
		resp.CustomerName = d.UserName
		resp.CustomerEmail = d.UserEmail
	}

	return resp
}

// FromDomainDetailsList конвертирует список бронирований
func FromDomainDetailsList(details []*domain.BookingDetails, now time.Time, withCustomer bool) *BookingListResponse {
	bookings := make([]*BookingResponse, 0, len(details))
	for _, d := range details {
		bookings = append(bookings, FromDomainDetails(d, now, withCustomer))
	}
	return &BookingListResponse{
		Bookings: bookings,
		Total:    len(bookings),
	}
}

func bookingStatus(b *domain.Booking, now time.Time) string {
	start, err := b.StartInstant()
	if err != nil {
		return StatusUpcoming
	}
	if now.Before(start) {
		return StatusUpcoming
	}
	if b.IsPast(now) {
		return StatusCompleted
	}
	return StatusOngoing
}

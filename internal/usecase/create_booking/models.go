package create_booking

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID   int64            // ID пользователя из токена
	CentreID int64            // ID центра
	SportID  int64            // ID вида спорта
	CourtID  int64            // ID корта
	Date     time.Time        // Дата бронирования (без времени)
	Start    types.TimeString // Время начала
	End      types.TimeString // Время конца, пустое значит start + шаг сетки
}

// Response модель ответа с созданным бронированием.
// Повторяет формат подтверждения из истории бронирований: даты и время
// отформатированы для показа, машиночитаемые моменты в IST приложены отдельно.
type Response struct {
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
}

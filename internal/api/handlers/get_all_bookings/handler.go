package get_all_bookings

import (
	"net/http"
	"strconv"
	"time"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/internal/service/bookings/models"
	"github.com/quickcourt/QC-BookingService/pkg/ptr"
)

const (
	msgInvalidCentreID = "invalid centreId filter"
	msgInvalidDate     = "invalid date filter, expected YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?centreId=&startDate=&endDate=
// Только для менеджеров, роль проверяет middleware.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.GetAllBookingsRequest{}
	query := r.URL.Query()

	if raw := query.Get("centreId"); raw != "" {
		centreID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidCentreID)
			return
		}
		req.CentreID = ptr.Ptr(centreID)
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = ptr.Ptr(startDate)
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = ptr.Ptr(endDate)
	}

	result, err := h.service.GetAllBookings(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /bookings - failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

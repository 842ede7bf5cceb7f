package create_booking

import (
	"errors"
	"net/http"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/api/middleware"
	createBooking "github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgUnauthorized       = "authentication required"
	msgSlotAlreadyBooked  = "this slot is already booked"
	msgCentreNotFound     = "centre not found"
	msgSportNotFound      = "sport not found in this centre"
	msgCourtNotFound      = "court not found for this sport"
	msgUserNotFound       = "user not found"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - slot already booked: user=%d, court=%d", userID, req.CourtID)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrCentreNotFound):
			handlers.RespondNotFound(w, msgCentreNotFound)

		case errors.Is(err, createBooking.ErrSportNotFound):
			handlers.RespondNotFound(w, msgSportNotFound)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrOutsideOperatingHours),
			errors.Is(err, createBooking.ErrInvalidTimeRange),
			errors.Is(err, createBooking.ErrInvalidDate),
			errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - bad request: user=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - failed to create booking: user=%d, court=%d, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: booking_id=%d, user=%d, court=%d",
		result.ID, userID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, &CreateBookingResponse{Booking: result})
}

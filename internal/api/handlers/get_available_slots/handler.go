package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/domain"
	getSlots "github.com/quickcourt/QC-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCentreID = "invalid centre id"
	msgInvalidSportID  = "invalid sport id"
	msgInvalidCourtID  = "invalid court id"
	msgInvalidDate     = "invalid date, expected YYYY-MM-DD"
	msgCentreNotFound  = "centre not found"
	msgSportNotFound   = "sport not found in this centre"
	msgCourtNotFound   = "court not found for this sport"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/centres/{centreId}/sports/{sportId}/courts/{courtId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	centreID, err := strconv.ParseInt(vars["centreId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCentreID)
		return
	}
	sportID, err := strconv.ParseInt(vars["sportId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}
	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-slots - invalid date %q: %v", r.URL.Query().Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		CentreID: centreID,
		SportID:  sportID,
		CourtID:  courtID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrCentreNotFound):
			handlers.RespondNotFound(w, msgCentreNotFound)
		case errors.Is(err, getSlots.ErrSportNotFound):
			handlers.RespondNotFound(w, msgSportNotFound)
		case errors.Is(err, getSlots.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)
		case errors.Is(err, getSlots.ErrInvalidInput), errors.Is(err, getSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /available-slots - failed: centre=%d, court=%d, error=%v", centreID, courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

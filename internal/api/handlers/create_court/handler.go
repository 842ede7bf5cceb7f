package create_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/service/centres"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSportID     = "invalid sport id"
	msgSportNotFound      = "sport not found"
)

type CreateCourtRequest struct {
	Name string `json:"name"`
}

type CourtResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	SportID int64  `json:"sportId"`
}

type Handler struct {
	service CentreService
	logger  Logger
}

func NewHandler(service CentreService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sports/{sportId}/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sportID, err := strconv.ParseInt(mux.Vars(r)["sportId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	var req CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sports/{id}/courts - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.CreateCourt(r.Context(), sportID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, centres.ErrSportNotFound):
			handlers.RespondNotFound(w, msgSportNotFound)
		case errors.Is(err, centres.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /sports/{id}/courts - failed: sport=%d, error=%v", sportID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sports/{id}/courts - court created: id=%d, sport=%d", court.ID, sportID)
	handlers.RespondJSON(w, http.StatusCreated, CourtResponse{
		ID:      court.ID,
		Name:    court.Name,
		SportID: court.SportID,
	})
}

package create_sport

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
	msgInvalidCentreID    = "invalid centre id"
	msgCentreNotFound     = "centre not found"
)

type CreateSportRequest struct {
	Name string `json:"name"`
}

type SportResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CentreID int64  `json:"centreId"`
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

// Handle POST /api/v1/centres/{centreId}/sports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	centreID, err := strconv.ParseInt(mux.Vars(r)["centreId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCentreID)
		return
	}

	var req CreateSportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /centres/{id}/sports - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sport, err := h.service.CreateSport(r.Context(), centreID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, centres.ErrCentreNotFound):
			handlers.RespondNotFound(w, msgCentreNotFound)
		case errors.Is(err, centres.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /centres/{id}/sports - failed: centre=%d, error=%v", centreID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /centres/{id}/sports - sport created: id=%d, centre=%d", sport.ID, centreID)
	handlers.RespondJSON(w, http.StatusCreated, SportResponse{
		ID:       sport.ID,
		Name:     sport.Name,
		CentreID: sport.CentreID,
	})
}

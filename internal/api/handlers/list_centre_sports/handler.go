package list_centre_sports

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/service/centres"
)

const (
	msgInvalidCentreID = "invalid centre id"
	msgCentreNotFound  = "centre not found"
)

type SportResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CentreID int64  `json:"centreId"`
}

type ListResponse struct {
	Sports []SportResponse `json:"sports"`
	Total  int             `json:"total"`
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

// Handle GET /api/v1/centres/{centreId}/sports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	centreID, err := strconv.ParseInt(mux.Vars(r)["centreId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCentreID)
		return
	}

	result, err := h.service.ListCentreSports(r.Context(), centreID)
	if err != nil {
		if errors.Is(err, centres.ErrCentreNotFound) {
			handlers.RespondNotFound(w, msgCentreNotFound)
			return
		}
		h.logger.Error("GET /centres/{id}/sports - failed: centre=%d, error=%v", centreID, err)
		handlers.RespondInternalError(w)
		return
	}

	sports := make([]SportResponse, 0, len(result))
	for _, s := range result {
		sports = append(sports, SportResponse{
			ID:       s.ID,
			Name:     s.Name,
			CentreID: s.CentreID,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Sports: sports,
		Total:  len(sports),
	})
}

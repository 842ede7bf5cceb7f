package list_sport_courts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/service/centres"
)

const (
	msgInvalidSportID = "invalid sport id"
	msgSportNotFound  = "sport not found"
)

type CourtResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	SportID int64  `json:"sportId"`
}

type ListResponse struct {
	Courts []CourtResponse `json:"courts"`
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

// Handle GET /api/v1/sports/{sportId}/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sportID, err := strconv.ParseInt(mux.Vars(r)["sportId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	result, err := h.service.ListSportCourts(r.Context(), sportID)
	if err != nil {
		if errors.Is(err, centres.ErrSportNotFound) {
			handlers.RespondNotFound(w, msgSportNotFound)
			return
		}
		h.logger.Error("GET /sports/{id}/courts - failed: sport=%d, error=%v", sportID, err)
		handlers.RespondInternalError(w)
		return
	}

	courts := make([]CourtResponse, 0, len(result))
	for _, c := range result {
		courts = append(courts, CourtResponse{
			ID:      c.ID,
			Name:    c.Name,
			SportID: c.SportID,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Courts: courts,
		Total:  len(courts),
	})
}

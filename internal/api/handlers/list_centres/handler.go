package list_centres

import (
	"net/http"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
)

type CentreResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type ListResponse struct {
	Centres []CentreResponse `json:"centres"`
	Total   int              `json:"total"`
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

// Handle GET /api/v1/centres
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCentres(r.Context())
	if err != nil {
		h.logger.Error("GET /centres - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	centres := make([]CentreResponse, 0, len(result))
	for _, c := range result {
		centres = append(centres, CentreResponse{
			ID:       c.ID,
			Name:     c.Name,
			Location: c.Location,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Centres: centres,
		Total:   len(centres),
	})
}

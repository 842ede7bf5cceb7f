package create_centre

import (
	"errors"
	"net/http"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/service/centres"
)

const msgInvalidRequestBody = "invalid request body"

type CreateCentreRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type CentreResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
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

// Handle POST /api/v1/centres
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCentreRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /centres - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	centre, err := h.service.CreateCentre(r.Context(), req.Name, req.Location)
	if err != nil {
		if errors.Is(err, centres.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /centres - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /centres - centre created: id=%d", centre.ID)
	handlers.RespondJSON(w, http.StatusCreated, CentreResponse{
		ID:       centre.ID,
		Name:     centre.Name,
		Location: centre.Location,
	})
}

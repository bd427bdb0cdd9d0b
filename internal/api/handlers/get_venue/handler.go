package get_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/supasport/booking-service/internal/api/handlers"
	venuesService "github.com/supasport/booking-service/internal/service/venues"
)

const (
	msgInvalidVenueID = "ID do estabelecimento inválido"
	msgVenueNotFound  = "estabelecimento não encontrado"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueIDStr := vars["venueId"]

	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{venueId} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result, err := h.service.GetByID(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{venueId} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/{venueId} - Failed to get venue: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{venueId} - Venue retrieved successfully: venue_id=%d", venueID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

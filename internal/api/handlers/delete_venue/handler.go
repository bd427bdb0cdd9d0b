package delete_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/supasport/booking-service/internal/api/handlers"
	"github.com/supasport/booking-service/internal/api/middleware"
	venuesService "github.com/supasport/booking-service/internal/service/venues"
)

const (
	msgInvalidVenueID  = "ID do estabelecimento inválido"
	msgVenueNotFound   = "estabelecimento não encontrado"
	msgHasReservations = "estabelecimento possui reservas e não pode ser excluído"
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

// Handle DELETE /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueIDStr := vars["venueId"]

	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /venues/{venueId} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	userID := middleware.GetUserID(r.Context())

	if err := h.service.Delete(r.Context(), venueID, userID); err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("DELETE /venues/{venueId} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("DELETE /venues/{venueId} - Access denied: venue_id=%d, user_id=%d", venueID, userID)
			handlers.RespondForbidden(w)

		case errors.Is(err, venuesService.ErrHasReservations):
			h.logger.Warn("DELETE /venues/{venueId} - Venue has reservations: venue_id=%d", venueID)
			handlers.RespondError(w, http.StatusConflict, msgHasReservations)

		default:
			h.logger.Error("DELETE /venues/{venueId} - Failed to delete venue: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /venues/{venueId} - Venue deleted successfully: venue_id=%d, user_id=%d", venueID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

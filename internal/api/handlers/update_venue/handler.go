package update_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/supasport/booking-service/internal/api/handlers"
	"github.com/supasport/booking-service/internal/api/middleware"
	venuesService "github.com/supasport/booking-service/internal/service/venues"
	"github.com/supasport/booking-service/internal/service/venues/models"
)

const (
	msgInvalidVenueID     = "ID do estabelecimento inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "dados do estabelecimento inválidos"
	msgVenueNotFound      = "estabelecimento não encontrado"
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

// Handle PUT /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueIDStr := vars["venueId"]

	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /venues/{venueId} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req models.UpdateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{venueId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.GetUserID(r.Context())
	req.UserID = userID
	req.OwnerID = userID

	result, err := h.service.Update(r.Context(), venueID, &req)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("PUT /venues/{venueId} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("PUT /venues/{venueId} - Access denied: venue_id=%d, user_id=%d", venueID, userID)
			handlers.RespondForbidden(w)

		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("PUT /venues/{venueId} - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /venues/{venueId} - Failed to update venue: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/{venueId} - Venue updated successfully: venue_id=%d, user_id=%d", venueID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package create_venue

import (
	"errors"
	"net/http"

	"github.com/supasport/booking-service/internal/api/handlers"
	"github.com/supasport/booking-service/internal/api/middleware"
	venuesService "github.com/supasport/booking-service/internal/service/venues"
	"github.com/supasport/booking-service/internal/service/venues/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "dados do estabelecimento inválidos"
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

// Handle POST /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Владельцем становится аутентифицированный пользователь
	req.OwnerID = middleware.GetUserID(r.Context())

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("POST /venues - Invalid input: owner_id=%d, error=%v", req.OwnerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /venues - Failed to create venue: owner_id=%d, error=%v", req.OwnerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues - Venue created successfully: venue_id=%d, owner_id=%d", result.ID, req.OwnerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package get_payment_code

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/supasport/booking-service/internal/api/handlers"
	reservationsService "github.com/supasport/booking-service/internal/service/reservations"
	"github.com/supasport/booking-service/internal/service/reservations/models"
)

const (
	msgInvalidVenueID   = "ID do estabelecimento inválido"
	msgInvalidSlotCount = "parâmetro slots inválido"
	msgVenueNotFound    = "estabelecimento não encontrado"
	msgPixNotConfigured = "estabelecimento não possui chave Pix configurada"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/payment-code
// Query params: slots (required, количество выбранных слотов)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueIDStr := vars["venueId"]
	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{venueId}/payment-code - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	slotCountStr := r.URL.Query().Get("slots")
	slotCount, err := strconv.Atoi(slotCountStr)
	if err != nil || slotCount <= 0 {
		h.logger.Warn("GET /venues/{venueId}/payment-code - Invalid slot count: %q", slotCountStr)
		handlers.RespondBadRequest(w, msgInvalidSlotCount)
		return
	}

	serviceReq := &models.PaymentCodeRequest{
		VenueID:   venueID,
		SlotCount: slotCount,
	}

	result, err := h.service.PaymentCode(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{venueId}/payment-code - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, reservationsService.ErrPixNotConfigured):
			h.logger.Warn("GET /venues/{venueId}/payment-code - Pix not configured: venue_id=%d", venueID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPixNotConfigured)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /venues/{venueId}/payment-code - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotCount)

		default:
			h.logger.Error("GET /venues/{venueId}/payment-code - Failed to build payment code: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{venueId}/payment-code - Payment code generated: venue_id=%d, slots=%d, amount=%.2f",
		venueID, slotCount, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, result)
}

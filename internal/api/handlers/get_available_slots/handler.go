package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/supasport/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/supasport/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidVenueID = "ID do estabelecimento inválido"
	msgMissingDate    = "data é obrigatória"
	msgInvalidDate    = "formato de data inválido, esperado YYYY-MM-DD"
	msgVenueNotFound  = "estabelecimento não encontrado"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueIDStr := vars["venueId"]
	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{venueId}/available-slots - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /venues/{venueId}/available-slots - Missing date: venue_id=%d", venueID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(venueID, dateStr)
	if err != nil {
		h.logger.Warn("GET /venues/{venueId}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{venueId}/available-slots - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /venues/{venueId}/available-slots - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /venues/{venueId}/available-slots - Failed to get slots: venue_id=%d, date=%s, error=%v",
				venueID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /venues/{venueId}/available-slots - Slots retrieved successfully: venue_id=%d, date=%s, slots_count=%d",
		venueID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

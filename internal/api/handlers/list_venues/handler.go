package list_venues

import (
	"net/http"
	"strconv"

	"github.com/supasport/booking-service/internal/api/handlers"
	"github.com/supasport/booking-service/internal/domain"
	"github.com/supasport/booking-service/internal/service/venues/models"
)

const (
	msgInvalidLimit = "parâmetro limit inválido"
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

// Handle GET /api/v1/venues
// Query params: q (опционально, подстрока имени), city (опционально),
// limit (опционально, по умолчанию 20)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	nameQuery := query.Get("q")

	var cityPtr *string
	if city := query.Get("city"); city != "" {
		cityPtr = &city
	}

	limit := uint64(domain.DefaultVenueListLimit)
	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil || parsed == 0 {
			h.logger.Warn("GET /venues - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	serviceReq := &models.ListVenuesRequest{
		NameQuery: nameQuery,
		City:      cityPtr,
		Limit:     limit,
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /venues - Failed to list venues: query=%q, error=%v", nameQuery, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues - Venues listed successfully: query=%q, count=%d", nameQuery, len(result.Venues))
	handlers.RespondJSON(w, http.StatusOK, result)
}

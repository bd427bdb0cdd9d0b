package upload_venue_image

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/supasport/booking-service/internal/api/handlers"
	"github.com/supasport/booking-service/internal/api/middleware"
	venuesService "github.com/supasport/booking-service/internal/service/venues"
)

// maxImageSize максимальный размер загружаемого изображения (5 МБ)
const maxImageSize = 5 << 20

const (
	msgInvalidVenueID = "ID do estabelecimento inválido"
	msgInvalidKind    = "tipo de imagem inválido, esperado 'dia' ou 'noite'"
	msgInvalidImage   = "imagem inválida ou vazia"
	msgImageTooLarge  = "imagem excede o tamanho máximo de 5MB"
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

// Handle POST /api/v1/venues/{venueId}/images
// Query params: kind (required, "dia" | "noite"). Тело запроса - сырые
// байты изображения.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueIDStr := vars["venueId"]

	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{venueId}/images - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind != venuesService.ImageKindDay && kind != venuesService.ImageKindNight {
		h.logger.Warn("POST /venues/{venueId}/images - Invalid image kind: %q", kind)
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImageSize+1))
	if err != nil {
		h.logger.Warn("POST /venues/{venueId}/images - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}
	if len(data) > maxImageSize {
		h.logger.Warn("POST /venues/{venueId}/images - Image too large: venue_id=%d", venueID)
		handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgImageTooLarge)
		return
	}

	userID := middleware.GetUserID(r.Context())

	result, err := h.service.UploadImage(r.Context(), venueID, userID, kind, data)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{venueId}/images - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("POST /venues/{venueId}/images - Access denied: venue_id=%d, user_id=%d", venueID, userID)
			handlers.RespondForbidden(w)

		case errors.Is(err, venuesService.ErrInvalidImageKind), errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("POST /venues/{venueId}/images - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidImage)

		default:
			h.logger.Error("POST /venues/{venueId}/images - Failed to upload image: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{venueId}/images - Image uploaded successfully: venue_id=%d, kind=%s", venueID, kind)
	handlers.RespondJSON(w, http.StatusOK, result)
}

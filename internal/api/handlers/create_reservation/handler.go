package create_reservation

import (
	"errors"
	"net/http"

	"github.com/supasport/booking-service/internal/api/handlers"
	"github.com/supasport/booking-service/internal/api/middleware"
	createReservation "github.com/supasport/booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgEmptySelection     = "nenhum horário selecionado"
	msgVenueNotFound      = "estabelecimento não encontrado"
	msgSlotTaken          = "um dos horários selecionados já foi reservado"
	msgInvalidInput       = "dados da reserva inválidos"
	msgPartialFailure     = "reserva interrompida: parte dos horários não pôde ser reservada"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.GetUserID(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Частичный сбой: часть слотов уже забронирована, отката нет.
		// Возвращаем конфликт вместе с фактическим результатом.
		if result != nil && result.Created > 0 {
			h.logger.Warn("POST /reservations - Partial failure: user_id=%d, venue_id=%d, created=%d, error=%v",
				userID, req.VenueID, result.Created, err)
			handlers.RespondJSON(w, http.StatusConflict, &PartialFailureResponse{
				Error:  msgPartialFailure,
				Result: FromUseCaseResponse(result),
			})
			return
		}

		switch {
		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot already taken: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createReservation.ErrVenueNotFound):
			h.logger.Warn("POST /reservations - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createReservation.ErrEmptySelection):
			h.logger.Warn("POST /reservations - Empty selection: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, venue_id=%d, error=%v", userID, req.VenueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservations: user_id=%d, venue_id=%d, error=%v",
				userID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservations created successfully: user_id=%d, venue_id=%d, created=%d",
		userID, req.VenueID, result.Created)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

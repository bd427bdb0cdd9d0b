package get_user_reservations

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/supasport/booking-service/internal/api/handlers"
	"github.com/supasport/booking-service/internal/api/middleware"
)

const (
	msgInvalidUserID = "ID do usuário inválido"
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

// Handle GET /api/v1/users/{userId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/reservations - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Пользователь видит только свои бронирования
	if userID != middleware.GetUserID(r.Context()) {
		h.logger.Warn("GET /users/{userId}/reservations - Access denied: user_id=%d, requester_id=%d",
			userID, middleware.GetUserID(r.Context()))
		handlers.RespondForbidden(w)
		return
	}

	result, err := h.service.GetUserReservations(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{userId}/reservations - Failed to get reservations: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/reservations - Reservations retrieved successfully: user_id=%d, count=%d",
		userID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

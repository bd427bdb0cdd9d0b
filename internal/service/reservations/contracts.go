package reservations

import (
	"context"

	"github.com/supasport/booking-service/internal/domain"
)

// VenueRepository контракт репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// ReservationRepository контракт репозитория бронирований
type ReservationRepository interface {
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error)
}

// SlotRepository контракт репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
}

// Logger контракт логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

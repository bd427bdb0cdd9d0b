package create_reservation

import (
	"context"
	"time"

	"github.com/supasport/booking-service/internal/domain"
	"github.com/supasport/booking-service/pkg/types"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// CreateReserved создает строку слота сразу в статусе "reservado"
	CreateReserved(ctx context.Context, venueID int64, date time.Time, startTime types.TimeString) (int64, error)
	// Reserve переводит существующий слот в статус "reservado";
	// слот, уже занятый конкурентом, возвращает типизированную ошибку
	Reserve(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/supasport/booking-service/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetByVenueAndDate получает персистентные слоты площадки на дату
	GetByVenueAndDate(ctx context.Context, venueID int64, date time.Time) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

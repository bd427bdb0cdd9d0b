package venues

import (
	"context"

	"github.com/supasport/booking-service/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context, filter domain.VenueFilter) ([]*domain.Venue, error)
	Update(ctx context.Context, id int64, v *domain.Venue) error
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// ExistsByVenueID используется как защита при удалении площадки
	ExistsByVenueID(ctx context.Context, venueID int64) (bool, error)
}

// FileStoreClient интерфейс клиента файлового хранилища изображений
type FileStoreClient interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	PublicURL(key string) string
	Delete(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

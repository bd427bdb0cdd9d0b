package update_venue

import (
	"context"

	"github.com/supasport/booking-service/internal/service/venues/models"
)

type VenueService interface {
	Update(ctx context.Context, id int64, req *models.UpdateVenueRequest) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

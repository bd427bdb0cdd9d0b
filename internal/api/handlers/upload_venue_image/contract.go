package upload_venue_image

import (
	"context"

	"github.com/supasport/booking-service/internal/service/venues/models"
)

type VenueService interface {
	UploadImage(ctx context.Context, id int64, userID int64, kind string, data []byte) (*models.UploadImageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

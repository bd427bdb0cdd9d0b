package delete_venue

import "context"

type VenueService interface {
	Delete(ctx context.Context, id int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package reservations

import "errors"

var (
	ErrVenueNotFound    = errors.New("venue not found")
	ErrPixNotConfigured = errors.New("venue has no pix key configured")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
)

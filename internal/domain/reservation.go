package domain

import "time"

// Reservation links a user to a reserved slot of a venue
type Reservation struct {
	ID        int64
	UserID    int64
	VenueID   int64
	SlotID    int64
	CreatedAt time.Time
}

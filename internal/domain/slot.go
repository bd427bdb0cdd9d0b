package domain

import (
	"time"

	"github.com/supasport/booking-service/pkg/types"
)

// SlotStatus represents the booking status of a time slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "disponivel"
	SlotStatusReserved  SlotStatus = "reservado"

	// SlotStatusFree is a legacy synonym for SlotStatusAvailable that still
	// exists in old rows. It is accepted on read and never written.
	SlotStatusFree SlotStatus = "livre"
)

// IsAvailable reports whether the status allows the slot to be reserved
func (s SlotStatus) IsAvailable() bool {
	return s == SlotStatusAvailable || s == SlotStatusFree
}

// Canonical maps legacy status literals to their canonical form
func (s SlotStatus) Canonical() SlotStatus {
	if s == SlotStatusFree {
		return SlotStatusAvailable
	}
	return s
}

// Slot is a persisted time slot row. Rows are created lazily: a slot only
// exists in storage once it has been reserved at least once.
type Slot struct {
	ID        int64
	VenueID   int64
	Date      time.Time // calendar date, time part ignored
	StartTime types.TimeString
	Status    SlotStatus
}

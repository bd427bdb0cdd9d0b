package domain

import (
	"time"

	"github.com/supasport/booking-service/pkg/types"
)

// Weekday is an operating day of a venue, in the store's abbreviated form
type Weekday string

const (
	Sunday    Weekday = "dom"
	Monday    Weekday = "seg"
	Tuesday   Weekday = "ter"
	Wednesday Weekday = "qua"
	Thursday  Weekday = "qui"
	Friday    Weekday = "sex"
	Saturday  Weekday = "sáb"
)

// WeekdayOrder canonical ordering of weekdays, Sunday first
var WeekdayOrder = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Index returns the position of the weekday in WeekdayOrder, or -1
func (w Weekday) Index() int {
	for i, d := range WeekdayOrder {
		if d == w {
			return i
		}
	}
	return -1
}

// Amenity is an infrastructure feature a venue may offer
type Amenity string

// AmenitySet is the set of amenities available at a venue
type AmenitySet map[Amenity]bool

// Has reports whether the amenity is available
func (s AmenitySet) Has(a Amenity) bool {
	return s[a]
}

// Venue represents a bookable establishment
type Venue struct {
	ID         int64
	OwnerID    int64
	Name       string
	SportType  string
	City       string
	PostalCode string

	OpeningTime         types.TimeString
	ClosingTime         types.TimeString
	SlotDurationMinutes int
	PricePerSlot        float64
	PixKey              *string

	OperatingDays []Weekday
	Amenities     AmenitySet

	DayImageURL   *string
	NightImageURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotDuration returns the venue's slot duration in minutes,
// falling back to the default when unset or invalid
func (v *Venue) SlotDuration() int {
	if v.SlotDurationMinutes > 0 {
		return v.SlotDurationMinutes
	}
	return DefaultSlotDurationMinutes
}

// AcceptsPix reports whether the venue can receive PIX payments
func (v *Venue) AcceptsPix() bool {
	return v.PixKey != nil && *v.PixKey != ""
}

// IsOwnedBy reports whether userID registered the venue
func (v *Venue) IsOwnedBy(userID int64) bool {
	return v.OwnerID == userID
}

// VenueFilter filters venue directory listings
type VenueFilter struct {
	NameQuery string // substring match on the venue name, case-insensitive
	City      *string
	Limit     uint64 // 0 = default limit
}

package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
	DefaultVenueListLimit      = 20
	MaxVenueListLimit          = 100
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxVenueNameLength     = 120
	MaxSelectionSize       = 24 // a full day of hourly slots
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerDay is used for the end-of-day adjustment when a venue
// closes at midnight
const MinutesPerDay = 24 * 60

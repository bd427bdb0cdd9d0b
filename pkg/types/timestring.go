package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeFormat canonical wall-clock format used across the service
const TimeFormat = "15:04"

// TimeString represents a wall-clock time label in "HH:MM" form.
// It is the identity key of a slot within a date, so it is kept as a
// canonical zero-padded string rather than a time.Time.
type TimeString string

// NewTimeString creates a TimeString from the wall-clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses s into a canonical TimeString.
// Accepts "HH:MM" and longer storage representations such as "HH:MM:SS" or
// "HH:MM:SS+00" - only the first five characters are significant.
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return TimeString(parsed.Format(TimeFormat)), nil
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("minutes out of range: %d", minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String returns the canonical "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time
func (t TimeString) Validate() error {
	_, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// Minutes returns the value as minutes since midnight
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %v", err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by minutes.
// The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := (current + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return NewTimeStringFromMinutes(total)
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Scan implements sql.Scanner. Storage may return time columns as
// "HH:MM:SS" strings or as time.Time values - both are normalized
// to the "HH:MM" prefix form.
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", value)
	}
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

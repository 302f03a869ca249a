package utils

import (
	"time"

	"github.com/julianstephens/journl/internal/constants"
)

// LoadLocation resolves an IANA timezone name. "Local" and the empty string
// mean the system timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ParseTime parses an HH:MM time of day.
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) as local midnight in loc.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ValidateTimeFormat accepts only zero-padded HH:MM so stored times sort
// lexically.
func ValidateTimeFormat(timeStr string) bool {
	if len(timeStr) != len(constants.TimeFormat) {
		return false
	}
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateDateFormat accepts only fixed-width YYYY-MM-DD dates.
func ValidateDateFormat(dateStr string) bool {
	if len(dateStr) != len(constants.DateFormat) {
		return false
	}
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

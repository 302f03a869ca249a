package models

import "github.com/julianstephens/journl/internal/constants"

type DayStatusType string

const (
	StatusNormal    DayStatusType = "normal"
	StatusSkip      DayStatusType = "skip"
	StatusSick      DayStatusType = "sick"
	StatusEmergency DayStatusType = "emergency"
)

// Valid reports whether s is a known status.
func (s DayStatusType) Valid() bool {
	switch s {
	case StatusNormal, StatusSkip, StatusSick, StatusEmergency:
		return true
	}
	return false
}

// Excused reports whether the status exempts the day from completion.
func (s DayStatusType) Excused() bool {
	return s == StatusSkip || s == StatusSick || s == StatusEmergency
}

// DayStatus overrides the completion requirement for a date.
type DayStatus struct {
	Date   string        `json:"date"` // YYYY-MM-DD format
	Status DayStatusType `json:"status"`
}

// Credits holds the remaining monthly streak-protection balances.
type Credits struct {
	Skip       int    `json:"skip"`
	Sick       int    `json:"sick"`
	Emergency  int    `json:"emergency"`
	MonthReset string `json:"month_reset"` // YYYY-MM of last replenish
}

// DefaultCredits returns a full allotment with no replenish marker.
func DefaultCredits() Credits {
	return Credits{
		Skip:      constants.SkipCreditAllotment,
		Sick:      constants.SickCreditAllotment,
		Emergency: constants.EmergencyCreditAllotment,
	}
}

// Allotment returns the monthly cap for kind, or 0 for statuses that are not credits.
func Allotment(kind DayStatusType) int {
	switch kind {
	case StatusSkip:
		return constants.SkipCreditAllotment
	case StatusSick:
		return constants.SickCreditAllotment
	case StatusEmergency:
		return constants.EmergencyCreditAllotment
	}
	return 0
}

// Balance returns the remaining credits of kind.
func (c Credits) Balance(kind DayStatusType) int {
	switch kind {
	case StatusSkip:
		return c.Skip
	case StatusSick:
		return c.Sick
	case StatusEmergency:
		return c.Emergency
	}
	return 0
}

// WithBalance returns a copy of c with kind set to n.
func (c Credits) WithBalance(kind DayStatusType, n int) Credits {
	switch kind {
	case StatusSkip:
		c.Skip = n
	case StatusSick:
		c.Sick = n
	case StatusEmergency:
		c.Emergency = n
	}
	return c
}

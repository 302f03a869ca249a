// Package ledger spends streak-protection credits and records day statuses.
// Every function returns fresh values and leaves its inputs untouched.
package ledger

import (
	"github.com/julianstephens/journl/internal/logger"
	"github.com/julianstephens/journl/internal/models"
)

// UseCredit spends one credit of kind to mark date with that status.
// With no balance left (or a kind that is not a credit) it is a no-op and
// reports false. A second credit on the same date overwrites the earlier
// status; the credit spent first is not refunded.
func UseCredit(credits models.Credits, statuses []models.DayStatus, kind models.DayStatusType, date string) (models.Credits, []models.DayStatus, bool) {
	balance := credits.Balance(kind)
	if !kind.Excused() || balance <= 0 {
		logger.Info("Credit not available", "kind", kind, "balance", balance, "date", date)
		return credits, statuses, false
	}

	return credits.WithBalance(kind, balance-1), SetDayStatus(statuses, date, kind), true
}

// SetDayStatus upserts the status for date.
func SetDayStatus(statuses []models.DayStatus, date string, status models.DayStatusType) []models.DayStatus {
	out := make([]models.DayStatus, 0, len(statuses)+1)
	replaced := false
	for _, s := range statuses {
		if s.Date == date {
			if replaced {
				continue
			}
			s.Status = status
			replaced = true
		}
		out = append(out, s)
	}
	if !replaced {
		out = append(out, models.DayStatus{Date: date, Status: status})
	}
	return out
}

// StatusOn returns the status recorded for date, normal when there is none.
func StatusOn(statuses []models.DayStatus, date string) models.DayStatusType {
	for _, s := range statuses {
		if s.Date == date {
			return s.Status
		}
	}
	return models.StatusNormal
}

// Clamp bounds every balance into [0, monthly allotment].
func Clamp(credits models.Credits) models.Credits {
	for _, kind := range []models.DayStatusType{models.StatusSkip, models.StatusSick, models.StatusEmergency} {
		n := credits.Balance(kind)
		if n < 0 {
			n = 0
		}
		if limit := models.Allotment(kind); n > limit {
			n = limit
		}
		credits = credits.WithBalance(kind, n)
	}
	return credits
}

// Replenish restores the monthly allotments when month (YYYY-MM) differs
// from the last replenish marker. It reports whether anything changed.
func Replenish(credits models.Credits, month string) (models.Credits, bool) {
	if month == "" || credits.MonthReset == month {
		return credits, false
	}

	fresh := models.DefaultCredits()
	fresh.MonthReset = month
	logger.Info("Replenished monthly credits", "month", month, "previous", credits.MonthReset)
	return fresh, true
}

package utils

import (
	"time"

	"github.com/julianstephens/journl/internal/constants"
	"github.com/julianstephens/journl/internal/logger"
	"github.com/julianstephens/journl/internal/models"
)

// Calendar does date arithmetic on local calendar dates.
// Dates are always built at local midnight before days are added or
// subtracted so that DST transitions never shift the result.
type Calendar struct {
	Location *time.Location
	// Now defaults to time.Now. Tests pin it to a fixed instant.
	Now func() time.Time
}

// NewCalendar returns a calendar for loc (time.Local when nil).
func NewCalendar(loc *time.Location) Calendar {
	return Calendar{Location: loc}
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Clock returns the current instant in the calendar's location.
func (c Calendar) Clock() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return now().In(c.location())
}

func (c Calendar) midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location())
}

func (c Calendar) parse(date string) (time.Time, bool) {
	t, err := ParseDateInLocation(date, c.location())
	if err != nil {
		logger.Debug("Ignoring malformed date", "date", date, "error", err)
		return time.Time{}, false
	}
	return t, true
}

// Today returns the current local date.
func (c Calendar) Today() string {
	return c.Clock().Format(constants.DateFormat)
}

// Month returns the current local month as YYYY-MM.
func (c Calendar) Month() string {
	return c.Clock().Format(constants.MonthFormat)
}

// DaysAgo returns the date n calendar days before today.
func (c Calendar) DaysAgo(n int) string {
	today := c.midnight(c.Clock())
	return today.AddDate(0, 0, -n).Format(constants.DateFormat)
}

// AddDays shifts date by n calendar days. It returns "" for a malformed date.
func (c Calendar) AddDays(date string, n int) string {
	t, ok := c.parse(date)
	if !ok {
		return ""
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat)
}

// WeekdayOf returns the schedule label for date, or "" when date is malformed.
func (c Calendar) WeekdayOf(date string) models.Weekday {
	t, ok := c.parse(date)
	if !ok {
		return ""
	}
	return models.WeekdayFromTime(t.Weekday())
}

// WeekOf returns the Monday-to-Sunday week containing date.
func (c Calendar) WeekOf(date string) []string {
	t, ok := c.parse(date)
	if !ok {
		return nil
	}
	// Sunday is 0, so shift it to the end of the week.
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)

	week := make([]string, 7)
	for i := range week {
		week[i] = monday.AddDate(0, 0, i).Format(constants.DateFormat)
	}
	return week
}

// DaysInRange returns every date from start to end inclusive.
func (c Calendar) DaysInRange(start, end string) []string {
	from, ok := c.parse(start)
	if !ok {
		return nil
	}
	to, ok := c.parse(end)
	if !ok {
		return nil
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(constants.DateFormat))
	}
	return dates
}

// IsScheduled reports whether habit h is due on date: the weekday must be in
// its schedule and the date must not precede the habit's creation date.
func (c Calendar) IsScheduled(h models.Habit, date string) bool {
	wd := c.WeekdayOf(date)
	if wd == "" {
		return false
	}
	return h.ScheduledOnWeekday(wd) && date >= h.CreatedDate()
}

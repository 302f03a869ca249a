// Package validation checks user-supplied habits, journal entries and
// settings before they reach the reducer.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/journl/internal/constants"
	"github.com/julianstephens/journl/internal/models"
	"github.com/julianstephens/journl/internal/utils"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Problem is one failed check on one field.
type Problem struct {
	Field    string
	Message  string
	Severity Severity
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Field, p.Message)
}

type Problems []Problem

func (ps *Problems) add(field, format string, args ...any) {
	*ps = append(*ps, Problem{Field: field, Message: fmt.Sprintf(format, args...), Severity: SeverityError})
}

func (ps *Problems) warn(field, format string, args ...any) {
	*ps = append(*ps, Problem{Field: field, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning})
}

// Err joins the error-level problems, or returns nil when there are none.
func (ps Problems) Err() error {
	var errs []error
	for _, p := range ps {
		if p.Severity == SeverityError {
			errs = append(errs, errors.New(p.String()))
		}
	}
	return errors.Join(errs...)
}

// Warnings returns the warning-level problems.
func (ps Problems) Warnings() Problems {
	var out Problems
	for _, p := range ps {
		if p.Severity == SeverityWarning {
			out = append(out, p)
		}
	}
	return out
}

func ValidateDate(date string) Problems {
	var ps Problems
	if !utils.ValidateDateFormat(date) {
		ps.add("date", "must be YYYY-MM-DD, got %q", date)
	}
	return ps
}

// ValidateHabit checks a habit's own fields. An empty schedule is allowed
// with a warning: such a habit is never due.
func ValidateHabit(h models.Habit) Problems {
	var ps Problems

	if strings.TrimSpace(h.Name) == "" {
		ps.add("name", "must not be empty")
	}
	if !h.Category.Valid() {
		ps.add("category", "unknown category %q", h.Category)
	}
	if h.Target < 1 {
		ps.add("target", "must be at least 1, got %d", h.Target)
	}
	if len(h.Frequency) == 0 {
		ps.warn("frequency", "no scheduled days; the habit will never be due")
	}
	seen := map[models.Weekday]bool{}
	for _, d := range h.Frequency {
		if !d.Valid() {
			ps.add("frequency", "unknown weekday %q", d)
			continue
		}
		if seen[d] {
			ps.add("frequency", "duplicate weekday %q", d)
		}
		seen[d] = true
	}
	if h.ReminderTime != "" {
		if !utils.ValidateTimeFormat(h.ReminderTime) {
			ps.add("reminder_time", "must be HH:MM, got %q", h.ReminderTime)
		}
	}

	return ps
}

// ValidateUniqueName reports a habit whose name collides with another habit.
func ValidateUniqueName(existing []models.Habit, h models.Habit) Problems {
	var ps Problems
	for _, other := range existing {
		if other.ID != h.ID && strings.EqualFold(strings.TrimSpace(other.Name), strings.TrimSpace(h.Name)) {
			ps.add("name", "a habit named %q already exists", other.Name)
			break
		}
	}
	return ps
}

func ValidateJournalEntry(e models.JournalEntry) Problems {
	var ps Problems

	if !e.Mood.Valid() {
		ps.add("mood", "must be between %d and %d, got %d", constants.MinMood, constants.MaxMood, e.Mood)
	}
	if strings.TrimSpace(e.Content) == "" {
		ps.add("content", "must not be empty")
	}
	if e.Date != "" {
		ps = append(ps, ValidateDate(e.Date)...)
	}
	for _, tag := range e.Tags {
		if strings.TrimSpace(tag) == "" {
			ps.add("tags", "must not contain empty tags")
			break
		}
	}

	return ps
}

func ValidateNotificationSettings(s models.NotificationSettings) Problems {
	var ps Problems
	if !utils.ValidateTimeFormat(s.MorningTime) {
		ps.add("morning_time", "must be HH:MM, got %q", s.MorningTime)
	}
	if !utils.ValidateTimeFormat(s.EveningTime) {
		ps.add("evening_time", "must be HH:MM, got %q", s.EveningTime)
	}
	return ps
}

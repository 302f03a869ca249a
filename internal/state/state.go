package state

import (
	"slices"
	"strings"

	"github.com/julianstephens/journl/internal/constants"
	"github.com/julianstephens/journl/internal/models"
	"github.com/julianstephens/journl/internal/scoring"
	"github.com/julianstephens/journl/internal/utils"
)

// State is everything the app persists. Values are treated as immutable:
// the reducer always builds new slices instead of editing in place.
type State struct {
	Theme                models.Theme
	JournalEntries       []models.JournalEntry // newest first
	Habits               []models.Habit
	HabitLogs            []models.HabitLog
	DayStatuses          []models.DayStatus
	Credits              models.Credits
	NotificationSettings models.NotificationSettings
	Tags                 []string
	UnlockedMilestones   []string
	FocusMode            bool
	Settings             models.Settings
}

// Default returns the state of a fresh journal.
func Default() State {
	settings := models.Settings{}
	models.ApplyDefaultSettings(&settings)
	return State{
		Theme:                models.ThemeMorning,
		JournalEntries:       []models.JournalEntry{},
		Habits:               []models.Habit{},
		HabitLogs:            []models.HabitLog{},
		DayStatuses:          []models.DayStatus{},
		Credits:              models.DefaultCredits(),
		NotificationSettings: models.DefaultNotificationSettings(),
		Tags:                 slices.Clone(constants.DefaultTags),
		UnlockedMilestones:   []string{},
		Settings:             settings,
	}
}

// Snapshot indexes the collections the scoring engine reads.
func (s State) Snapshot() scoring.Snapshot {
	return scoring.NewSnapshot(s.Habits, s.HabitLogs, s.DayStatuses)
}

// FindHabit returns the habit with id.
func (s State) FindHabit(id string) (models.Habit, bool) {
	for _, h := range s.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// FindHabitByName matches a habit name case-insensitively, falling back to an id match.
func (s State) FindHabitByName(name string) (models.Habit, bool) {
	for _, h := range s.Habits {
		if strings.EqualFold(h.Name, name) {
			return h, true
		}
	}
	return s.FindHabit(name)
}

// FindEntry returns the journal entry with id.
func (s State) FindEntry(id string) (models.JournalEntry, bool) {
	for _, e := range s.JournalEntries {
		if e.ID == id {
			return e, true
		}
	}
	return models.JournalEntry{}, false
}

// FindLog returns the log for habitID on date.
func (s State) FindLog(habitID, date string) (models.HabitLog, bool) {
	if i := logIndex(s.HabitLogs, habitID, date); i >= 0 {
		return s.HabitLogs[i], true
	}
	return models.HabitLog{}, false
}

// TodayHabits returns the habits due today. In focus mode only the first
// few are returned.
func (s State) TodayHabits(cal utils.Calendar) []models.Habit {
	today := cal.Today()
	var due []models.Habit
	for _, h := range s.Habits {
		if cal.IsScheduled(h, today) {
			due = append(due, h)
		}
	}
	if s.FocusMode && len(due) > constants.FocusModeLimit {
		due = due[:constants.FocusModeLimit]
	}
	return due
}

func logIndex(logs []models.HabitLog, habitID, date string) int {
	return slices.IndexFunc(logs, func(l models.HabitLog) bool {
		return l.HabitID == habitID && l.Date == date
	})
}

package state

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/journl/internal/constants"
	"github.com/julianstephens/journl/internal/ledger"
	"github.com/julianstephens/journl/internal/logger"
	"github.com/julianstephens/journl/internal/models"
	"github.com/julianstephens/journl/internal/utils"
)

// Reducer maps (state, action) to a new state.
type Reducer struct {
	Calendar utils.Calendar
	// NewID defaults to uuid.NewString.
	NewID func() string
}

// NewReducer returns a reducer that stamps entities using cal.
func NewReducer(cal utils.Calendar) *Reducer {
	return &Reducer{Calendar: cal, NewID: uuid.NewString}
}

func (r *Reducer) id() string {
	if r.NewID == nil {
		return uuid.NewString()
	}
	return r.NewID()
}

// Reduce applies action to s. Actions that reference unknown entities leave
// the state unchanged.
func (r *Reducer) Reduce(s State, action Action) State {
	logger.Debug("Reducing action", "action", action.Name())

	switch a := action.(type) {
	case SetTheme:
		if a.Theme.Valid() {
			s.Theme = a.Theme
		}

	case AddJournalEntry:
		now := r.Calendar.Clock()
		date := a.Date
		if date == "" {
			date = now.Format(constants.DateFormat)
		}
		entry := models.JournalEntry{
			ID:        r.id(),
			Date:      date,
			Time:      now.Format(constants.TimeFormat),
			CreatedAt: now,
			Mood:      a.Mood,
			Content:   a.Content,
			Tags:      slices.Clone(a.Tags),
		}
		s.JournalEntries = append([]models.JournalEntry{entry}, s.JournalEntries...)

	case UpdateJournalEntry:
		s.JournalEntries = replaceWhere(s.JournalEntries, func(e models.JournalEntry) bool {
			return e.ID == a.Entry.ID
		}, a.Entry)

	case DeleteJournalEntry:
		s.JournalEntries = removeWhere(s.JournalEntries, func(e models.JournalEntry) bool {
			return e.ID == a.ID
		})

	case AddHabit:
		h := a.Habit
		h.ID = r.id()
		h.CreatedAt = r.Calendar.Clock()
		h.Frequency = slices.Clone(h.Frequency)
		s.Habits = append(slices.Clone(s.Habits), h)

	case UpdateHabit:
		existing, ok := s.FindHabit(a.Habit.ID)
		if !ok {
			break
		}
		h := a.Habit
		if h.CreatedAt.IsZero() {
			h.CreatedAt = existing.CreatedAt
		}
		s.Habits = replaceWhere(s.Habits, func(x models.Habit) bool { return x.ID == h.ID }, h)

	case DeleteHabit:
		s.Habits = removeWhere(s.Habits, func(h models.Habit) bool { return h.ID == a.ID })
		s.HabitLogs = removeWhere(s.HabitLogs, func(l models.HabitLog) bool { return l.HabitID == a.ID })

	case ToggleHabit:
		s = r.toggle(s, a)

	case IncrementHabit:
		s = r.increment(s, a)

	case SetDayStatus:
		if a.Status.Valid() {
			s.DayStatuses = ledger.SetDayStatus(s.DayStatuses, a.Date, a.Status)
		}

	case UseCredit:
		credits, statuses, ok := ledger.UseCredit(s.Credits, s.DayStatuses, a.Kind, a.Date)
		if ok {
			s.Credits, s.DayStatuses = credits, statuses
		}

	case UpdateCredits:
		s.Credits = ledger.Clamp(a.Credits)

	case ReplenishCredits:
		if credits, changed := ledger.Replenish(s.Credits, a.Month); changed {
			s.Credits = credits
		}

	case UpdateNotificationSettings:
		s.NotificationSettings = a.Settings

	case UpdateSettings:
		settings := a.Settings
		models.ApplyDefaultSettings(&settings)
		s.Settings = settings

	case AddTag:
		tag := strings.TrimSpace(a.Tag)
		if tag != "" && !slices.Contains(s.Tags, tag) {
			s.Tags = append(slices.Clone(s.Tags), tag)
		}

	case RemoveTag:
		s.Tags = removeWhere(s.Tags, func(t string) bool { return t == a.Tag })

	case UnlockMilestone:
		if a.ID != "" && !slices.Contains(s.UnlockedMilestones, a.ID) {
			s.UnlockedMilestones = append(slices.Clone(s.UnlockedMilestones), a.ID)
		}

	case ToggleFocusMode:
		s.FocusMode = !s.FocusMode

	default:
		logger.Warn("Ignoring unknown action", "action", action.Name())
	}

	return s
}

func (r *Reducer) toggle(s State, a ToggleHabit) State {
	habit, ok := s.FindHabit(a.HabitID)
	if !ok {
		logger.Debug("Toggle for unknown habit ignored", "habit_id", a.HabitID)
		return s
	}

	log, exists := s.FindLog(a.HabitID, a.Date)
	if exists {
		log.Completed = !log.Completed
		log.Progress = 0
		if log.Completed {
			log.Progress = habit.Target
		}
	} else {
		log = models.HabitLog{
			ID:        r.id(),
			HabitID:   a.HabitID,
			Date:      a.Date,
			Completed: true,
			Progress:  habit.Target,
		}
	}

	s.HabitLogs = upsertLog(s.HabitLogs, log)
	return s
}

func (r *Reducer) increment(s State, a IncrementHabit) State {
	habit, ok := s.FindHabit(a.HabitID)
	if !ok {
		logger.Debug("Increment for unknown habit ignored", "habit_id", a.HabitID)
		return s
	}

	log, exists := s.FindLog(a.HabitID, a.Date)
	if !exists {
		log = models.HabitLog{ID: r.id(), HabitID: a.HabitID, Date: a.Date}
	}

	log.Progress = max(0, min(habit.Target, log.Progress+a.Amount))
	log.Completed = log.Progress >= habit.Target

	s.HabitLogs = upsertLog(s.HabitLogs, log)
	return s
}

// upsertLog stores log as the only entry for its (habit, date) key.
func upsertLog(logs []models.HabitLog, log models.HabitLog) []models.HabitLog {
	out := make([]models.HabitLog, 0, len(logs)+1)
	placed := false
	for _, l := range logs {
		if l.HabitID == log.HabitID && l.Date == log.Date {
			if !placed {
				out = append(out, log)
				placed = true
			}
			continue
		}
		out = append(out, l)
	}
	if !placed {
		out = append(out, log)
	}
	return out
}

func replaceWhere[T any](items []T, match func(T) bool, item T) []T {
	out := slices.Clone(items)
	for i := range out {
		if match(out[i]) {
			out[i] = item
		}
	}
	return out
}

func removeWhere[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}

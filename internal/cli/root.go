package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/julianstephens/journl/internal/backup"
	"github.com/julianstephens/journl/internal/encouragement"
	jerrors "github.com/julianstephens/journl/internal/errors"
	"github.com/julianstephens/journl/internal/logger"
	"github.com/julianstephens/journl/internal/milestones"
	"github.com/julianstephens/journl/internal/models"
	"github.com/julianstephens/journl/internal/scoring"
	"github.com/julianstephens/journl/internal/state"
	"github.com/julianstephens/journl/internal/storage"
	"github.com/julianstephens/journl/internal/utils"
)

// Context is shared by every command. Commands load state, reduce actions
// and save the result through it.
type Context struct {
	Store    storage.Provider
	Calendar utils.Calendar
	Engine   *scoring.Engine
	Reducer  *state.Reducer
	Catalog  milestones.Catalog
	Picker   encouragement.Picker
	Out      io.Writer
	In       io.Reader
}

func NewContext(store storage.Provider, cal utils.Calendar) *Context {
	return &Context{
		Store:    store,
		Calendar: cal,
		Engine:   scoring.New(cal),
		Reducer:  state.NewReducer(cal),
		Catalog:  milestones.Default(),
		Out:      os.Stdout,
		In:       os.Stdin,
	}
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// Load reads the state and replenishes credits when a new month has begun.
func (c *Context) Load() (state.State, error) {
	s, err := storage.LoadState(c.Store)
	if err != nil {
		return state.State{}, err
	}

	replenished := c.Reducer.Reduce(s, state.ReplenishCredits{Month: c.Calendar.Month()})
	if replenished.Credits != s.Credits {
		if err := storage.SaveState(c.Store, s, replenished); err != nil {
			return state.State{}, err
		}
	}
	return replenished, nil
}

// Dispatch reduces actions onto s, unlocks any milestones the new state
// earns, and saves the changed collections.
func (c *Context) Dispatch(s state.State, actions ...state.Action) (state.State, error) {
	next := s
	for _, a := range actions {
		next = c.Reducer.Reduce(next, a)
	}

	for _, m := range c.NewMilestones(next) {
		next = c.Reducer.Reduce(next, state.UnlockMilestone{ID: m.ID})
		c.Printf("%s\n", Success.Render(fmt.Sprintf("%s Milestone unlocked: %s", m.Emoji, m.Label)))
	}

	if err := storage.SaveState(c.Store, s, next); err != nil {
		return s, err
	}
	return next, nil
}

// Stats derives milestone stats from s.
func (c *Context) Stats(s state.State) milestones.Stats {
	streak := c.Engine.Streak(s.Snapshot())
	return milestones.Collect(s.JournalEntries, s.Habits, s.HabitLogs, streak)
}

// NewMilestones returns milestones s has earned but not yet recorded.
func (c *Context) NewMilestones(s state.State) []milestones.Milestone {
	return c.Catalog.NewlyUnlocked(c.Stats(s), s.UnlockedMilestones)
}

// PerformAutomaticBackup creates a backup and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FindHabit resolves a habit by name or id.
func FindHabit(s state.State, ref string) (models.Habit, error) {
	h, ok := s.FindHabitByName(strings.TrimSpace(ref))
	if !ok {
		return models.Habit{}, fmt.Errorf("%w: %q", jerrors.ErrHabitNotFound, ref)
	}
	return h, nil
}

// ResolveDate accepts YYYY-MM-DD, "today", "yesterday" or an empty string
// (today).
func (c *Context) ResolveDate(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return c.Calendar.Today(), nil
	case "yesterday":
		return c.Calendar.DaysAgo(1), nil
	}
	if !utils.ValidateDateFormat(s) {
		return "", fmt.Errorf("%w: %q (expected YYYY-MM-DD)", jerrors.ErrInvalidDate, s)
	}
	return s, nil
}

var dayNames = map[string]models.Weekday{
	"sun": models.Sunday, "sunday": models.Sunday,
	"mon": models.Monday, "monday": models.Monday,
	"tue": models.Tuesday, "tuesday": models.Tuesday,
	"wed": models.Wednesday, "wednesday": models.Wednesday,
	"thu": models.Thursday, "thursday": models.Thursday,
	"fri": models.Friday, "friday": models.Friday,
	"sat": models.Saturday, "saturday": models.Saturday,
}

// ParseWeekdays parses a comma-separated list of weekdays. "daily",
// "weekdays" and "weekends" expand to their days; numbers count from
// Sunday = 0.
func ParseWeekdays(s string) ([]models.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "everyday":
		return append([]models.Weekday(nil), models.Weekdays...), nil
	case "weekdays":
		return []models.Weekday{models.Monday, models.Tuesday, models.Wednesday, models.Thursday, models.Friday}, nil
	case "weekends":
		return []models.Weekday{models.Saturday, models.Sunday}, nil
	case "":
		return []models.Weekday{}, nil
	}

	var days []models.Weekday
	seen := map[models.Weekday]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		wd, ok := dayNames[part]
		if !ok {
			num, err := strconv.Atoi(part)
			if err != nil || num < 0 || num > 6 {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
			wd = models.Weekdays[num]
		}
		if !seen[wd] {
			days = append(days, wd)
			seen[wd] = true
		}
	}
	return days, nil
}

// FormatFrequency renders a schedule compactly.
func FormatFrequency(days []models.Weekday) string {
	switch len(days) {
	case 0:
		return "never"
	case 7:
		return "daily"
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}

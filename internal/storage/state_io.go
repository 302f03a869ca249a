package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/journl/internal/constants"
	"github.com/julianstephens/journl/internal/ledger"
	"github.com/julianstephens/journl/internal/logger"
	"github.com/julianstephens/journl/internal/models"
	"github.com/julianstephens/journl/internal/state"
	"github.com/julianstephens/journl/internal/utils"
	"github.com/julianstephens/journl/internal/validation"
)

// fields maps each collection key onto the State field it persists.
func fields(s *state.State) map[string]any {
	return map[string]any{
		constants.CollectionJournalEntries:       &s.JournalEntries,
		constants.CollectionHabits:               &s.Habits,
		constants.CollectionHabitLogs:            &s.HabitLogs,
		constants.CollectionDayStatuses:          &s.DayStatuses,
		constants.CollectionCredits:              &s.Credits,
		constants.CollectionNotificationSettings: &s.NotificationSettings,
		constants.CollectionTags:                 &s.Tags,
		constants.CollectionUnlockedMilestones:   &s.UnlockedMilestones,
		constants.CollectionFocusMode:            &s.FocusMode,
		constants.CollectionTheme:                &s.Theme,
		constants.CollectionSettings:             &s.Settings,
	}
}

// LoadState reads every collection. A missing or malformed collection falls
// back to its default and a warning is logged; only provider failures are
// returned as errors.
func LoadState(p Provider) (state.State, error) {
	s := state.Default()
	defaults := state.Default()
	targets := fields(&s)

	for _, key := range constants.Collections {
		data, ok, err := p.GetCollection(key)
		if err != nil {
			return state.State{}, fmt.Errorf("failed to load state: %w", err)
		}
		if !ok {
			continue
		}
		if err := json.Unmarshal(data, targets[key]); err != nil {
			logger.Warn("Malformed collection, using default", "collection", key, "error", err)
			restore(&s, &defaults, key)
		}
	}

	normalize(&s, defaults)
	return s, nil
}

// restore copies the default value of key into s.
func restore(s, defaults *state.State, key string) {
	dst, src := fields(s)[key], fields(defaults)[key]
	data, _ := json.Marshal(src)
	_ = json.Unmarshal(data, dst)
}

func normalize(s *state.State, defaults state.State) {
	if s.JournalEntries == nil {
		s.JournalEntries = []models.JournalEntry{}
	}
	if s.Habits == nil {
		s.Habits = []models.Habit{}
	}
	if s.HabitLogs == nil {
		s.HabitLogs = []models.HabitLog{}
	}
	if s.DayStatuses == nil {
		s.DayStatuses = []models.DayStatus{}
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	if s.UnlockedMilestones == nil {
		s.UnlockedMilestones = []string{}
	}
	if !s.Theme.Valid() {
		logger.Warn("Unknown theme, using default", "theme", s.Theme)
		s.Theme = defaults.Theme
	}
	if problems := validation.ValidateNotificationSettings(s.NotificationSettings); len(problems) > 0 {
		logger.Warn("Invalid notification settings, using defaults", "error", problems.Err())
		s.NotificationSettings = defaults.NotificationSettings
	}
	s.Credits = ledger.Clamp(s.Credits)
	models.ApplyDefaultSettings(&s.Settings)
	if !utils.ValidateTimezone(s.Settings.Timezone) {
		logger.Warn("Unknown timezone, using default", "timezone", s.Settings.Timezone)
		s.Settings.Timezone = constants.DefaultTimezone
	}
	if s.Settings.ConsistencyWindowDays > constants.MaxConsistencyWindowDays {
		logger.Warn("Consistency window too long, clamping", "days", s.Settings.ConsistencyWindowDays)
		s.Settings.ConsistencyWindowDays = constants.MaxConsistencyWindowDays
	}
}

// Encode returns the JSON encoding of every collection in s.
func Encode(s state.State) (map[string][]byte, error) {
	out := make(map[string][]byte, len(constants.Collections))
	for key, v := range fields(&s) {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, err)
		}
		out[key] = data
	}
	return out, nil
}

// SaveState writes the collections of next that differ from prev.
func SaveState(p Provider, prev, next state.State) error {
	before, err := Encode(prev)
	if err != nil {
		return err
	}
	after, err := Encode(next)
	if err != nil {
		return err
	}

	changed := map[string][]byte{}
	for key, data := range after {
		if !bytes.Equal(before[key], data) {
			changed[key] = data
		}
	}
	if len(changed) == 0 {
		return nil
	}

	logger.Debug("Saving collections", "count", len(changed))
	if err := p.PutCollections(changed); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// SaveAll writes every collection of s.
func SaveAll(p Provider, s state.State) error {
	all, err := Encode(s)
	if err != nil {
		return err
	}
	if err := p.PutCollections(all); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

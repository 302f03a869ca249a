// Package milestones evaluates achievement thresholds against cumulative
// stats. The catalog is plain data: each entry names a stat and the value it
// must reach, so evaluation is a lookup and a comparison.
package milestones

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Kind names the stat a milestone is measured against.
type Kind string

const (
	KindJournalEntries  Kind = "journal_entries"
	KindHabitsCompleted Kind = "habits_completed"
	KindStreak          Kind = "streak"
	KindHabitsCreated   Kind = "habits_created"
	KindDaysActive      Kind = "days_active"
)

func (k Kind) Valid() bool {
	switch k {
	case KindJournalEntries, KindHabitsCompleted, KindStreak, KindHabitsCreated, KindDaysActive:
		return true
	}
	return false
}

// Stats is the derived snapshot milestones are checked against.
type Stats struct {
	TotalJournalEntries  int `json:"total_journal_entries" yaml:"total_journal_entries"`
	TotalHabitsCompleted int `json:"total_habits_completed" yaml:"total_habits_completed"`
	CurrentStreak        int `json:"current_streak" yaml:"current_streak"`
	TotalHabits          int `json:"total_habits" yaml:"total_habits"`
	DaysActive           int `json:"days_active" yaml:"days_active"`
}

// Value returns the stat named by k.
func (s Stats) Value(k Kind) (int, bool) {
	switch k {
	case KindJournalEntries:
		return s.TotalJournalEntries, true
	case KindHabitsCompleted:
		return s.TotalHabitsCompleted, true
	case KindStreak:
		return s.CurrentStreak, true
	case KindHabitsCreated:
		return s.TotalHabits, true
	case KindDaysActive:
		return s.DaysActive, true
	}
	return 0, false
}

// Milestone is a one-time achievement.
type Milestone struct {
	ID        string `json:"id" yaml:"id"`
	Label     string `json:"label" yaml:"label"`
	Emoji     string `json:"emoji" yaml:"emoji"`
	Kind      Kind   `json:"kind" yaml:"kind"`
	Threshold int    `json:"threshold" yaml:"threshold"`
}

// Satisfied reports whether stats reach the milestone's threshold.
// A milestone with an unknown kind is never satisfied.
func (m Milestone) Satisfied(stats Stats) bool {
	v, ok := stats.Value(m.Kind)
	return ok && v >= m.Threshold
}

// Catalog is an ordered list of milestones.
type Catalog []Milestone

type catalogFile struct {
	Milestones []Milestone `yaml:"milestones"`
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse milestone catalog: %w", err)
	}

	seen := make(map[string]bool, len(file.Milestones))
	for i, m := range file.Milestones {
		switch {
		case m.ID == "":
			return nil, fmt.Errorf("milestone %d: missing id", i)
		case seen[m.ID]:
			return nil, fmt.Errorf("milestone %q: duplicate id", m.ID)
		case !m.Kind.Valid():
			return nil, fmt.Errorf("milestone %q: unknown kind %q", m.ID, m.Kind)
		case m.Threshold < 1:
			return nil, fmt.Errorf("milestone %q: threshold must be at least 1", m.ID)
		}
		seen[m.ID] = true
	}

	return Catalog(file.Milestones), nil
}

// Default returns the built-in catalog.
func Default() Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		// The embedded catalog is covered by tests.
		panic(err)
	}
	return c
}

// AllUnlocked returns every milestone stats currently satisfy, in catalog order.
func (c Catalog) AllUnlocked(stats Stats) []Milestone {
	var out []Milestone
	for _, m := range c {
		if m.Satisfied(stats) {
			out = append(out, m)
		}
	}
	return out
}

// NewlyUnlocked returns satisfied milestones whose ids are not in unlocked,
// in catalog order. Callers usually surface only the first.
func (c Catalog) NewlyUnlocked(stats Stats, unlocked []string) []Milestone {
	known := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		known[id] = true
	}

	var out []Milestone
	for _, m := range c {
		if !known[m.ID] && m.Satisfied(stats) {
			out = append(out, m)
		}
	}
	return out
}

// Find returns the milestone with id.
func (c Catalog) Find(id string) (Milestone, bool) {
	for _, m := range c {
		if m.ID == id {
			return m, true
		}
	}
	return Milestone{}, false
}

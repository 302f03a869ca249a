package state

import "github.com/julianstephens/journl/internal/models"

// Action is a state transition handled by Reducer.Reduce.
type Action interface {
	Name() string
}

type SetTheme struct{ Theme models.Theme }

// AddJournalEntry writes a new entry. Date defaults to today.
type AddJournalEntry struct {
	Mood    models.Mood
	Content string
	Tags    []string
	Date    string
}

type UpdateJournalEntry struct{ Entry models.JournalEntry }

type DeleteJournalEntry struct{ ID string }

// AddHabit creates a habit; ID and CreatedAt are assigned by the reducer.
type AddHabit struct{ Habit models.Habit }

type UpdateHabit struct{ Habit models.Habit }

// DeleteHabit removes the habit and every log that references it.
type DeleteHabit struct{ ID string }

type ToggleHabit struct {
	HabitID string
	Date    string
}

type IncrementHabit struct {
	HabitID string
	Date    string
	Amount  int
}

type SetDayStatus struct {
	Date   string
	Status models.DayStatusType
}

// UseCredit spends a credit of Kind on Date.
type UseCredit struct {
	Kind models.DayStatusType
	Date string
}

type UpdateCredits struct{ Credits models.Credits }

// ReplenishCredits restores the monthly allotment when Month is new.
type ReplenishCredits struct{ Month string }

type UpdateNotificationSettings struct{ Settings models.NotificationSettings }

type UpdateSettings struct{ Settings models.Settings }

type AddTag struct{ Tag string }

type RemoveTag struct{ Tag string }

type UnlockMilestone struct{ ID string }

type ToggleFocusMode struct{}

func (SetTheme) Name() string                   { return "set_theme" }
func (AddJournalEntry) Name() string            { return "add_journal_entry" }
func (UpdateJournalEntry) Name() string         { return "update_journal_entry" }
func (DeleteJournalEntry) Name() string         { return "delete_journal_entry" }
func (AddHabit) Name() string                   { return "add_habit" }
func (UpdateHabit) Name() string                { return "update_habit" }
func (DeleteHabit) Name() string                { return "delete_habit" }
func (ToggleHabit) Name() string                { return "toggle_habit" }
func (IncrementHabit) Name() string             { return "increment_habit" }
func (SetDayStatus) Name() string               { return "set_day_status" }
func (UseCredit) Name() string                  { return "use_credit" }
func (UpdateCredits) Name() string              { return "update_credits" }
func (ReplenishCredits) Name() string           { return "replenish_credits" }
func (UpdateNotificationSettings) Name() string { return "update_notification_settings" }
func (UpdateSettings) Name() string             { return "update_settings" }
func (AddTag) Name() string                     { return "add_tag" }
func (RemoveTag) Name() string                  { return "remove_tag" }
func (UnlockMilestone) Name() string            { return "unlock_milestone" }
func (ToggleFocusMode) Name() string            { return "toggle_focus_mode" }

package milestones

import "github.com/julianstephens/journl/internal/models"

// Collect derives milestone stats from the journal and habit collections.
// DaysActive counts distinct dates with a journal entry or a completed log.
func Collect(entries []models.JournalEntry, habits []models.Habit, logs []models.HabitLog, streak int) Stats {
	active := make(map[string]struct{})
	for _, e := range entries {
		active[e.Date] = struct{}{}
	}

	completed := 0
	for _, l := range logs {
		if l.Completed {
			completed++
			active[l.Date] = struct{}{}
		}
	}

	return Stats{
		TotalJournalEntries:  len(entries),
		TotalHabitsCompleted: completed,
		CurrentStreak:        streak,
		TotalHabits:          len(habits),
		DaysActive:           len(active),
	}
}

package scoring

import "github.com/julianstephens/journl/internal/models"

// LogKey identifies the single log a habit may have on a date.
type LogKey struct {
	HabitID string
	Date    string
}

// Snapshot is an immutable, indexed view of the collections the engine reads.
// Logs are keyed by (habit, date). Duplicate logs or statuses for a key
// resolve to the first one, the same record the reducer edits.
type Snapshot struct {
	habits   []models.Habit
	logs     map[LogKey]models.HabitLog
	statuses map[string]models.DayStatusType
}

// NewSnapshot indexes habits, logs and day statuses.
func NewSnapshot(habits []models.Habit, logs []models.HabitLog, statuses []models.DayStatus) Snapshot {
	snap := Snapshot{
		habits:   append([]models.Habit(nil), habits...),
		logs:     make(map[LogKey]models.HabitLog, len(logs)),
		statuses: make(map[string]models.DayStatusType, len(statuses)),
	}
	for _, l := range logs {
		key := LogKey{HabitID: l.HabitID, Date: l.Date}
		if _, seen := snap.logs[key]; !seen {
			snap.logs[key] = l
		}
	}
	for _, s := range statuses {
		if _, seen := snap.statuses[s.Date]; !seen {
			snap.statuses[s.Date] = s.Status
		}
	}
	return snap
}

// Habits returns the habits in their original order.
func (s Snapshot) Habits() []models.Habit {
	return s.habits
}

// Log returns the log for habitID on date, if any.
func (s Snapshot) Log(habitID, date string) (models.HabitLog, bool) {
	l, ok := s.logs[LogKey{HabitID: habitID, Date: date}]
	return l, ok
}

// Status returns the day status for date; absence means normal.
func (s Snapshot) Status(date string) models.DayStatusType {
	if st, ok := s.statuses[date]; ok {
		return st
	}
	return models.StatusNormal
}

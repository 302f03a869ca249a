package scoring

import (
	"math"

	"github.com/julianstephens/journl/internal/constants"
	"github.com/julianstephens/journl/internal/models"
	"github.com/julianstephens/journl/internal/utils"
)

// Engine turns a snapshot into completion percentages, consistency scores
// and streaks. It holds no state beyond the calendar it reads "today" from.
type Engine struct {
	cal utils.Calendar
}

// New creates an engine bound to cal.
func New(cal utils.Calendar) *Engine {
	return &Engine{cal: cal}
}

// Calendar returns the calendar the engine evaluates dates with.
func (e *Engine) Calendar() utils.Calendar {
	return e.cal
}

// ScheduledOn returns the habits due on date, in snapshot order.
func (e *Engine) ScheduledOn(snap Snapshot, date string) []models.Habit {
	var due []models.Habit
	for _, h := range snap.Habits() {
		if e.cal.IsScheduled(h, date) {
			due = append(due, h)
		}
	}
	return due
}

// DailyPercentage returns the granular completion (0-100) of the habits due
// on date. A day with nothing due is 100.
func (e *Engine) DailyPercentage(snap Snapshot, date string) int {
	return dailyPercentage(snap, e.ScheduledOn(snap, date), date)
}

func dailyPercentage(snap Snapshot, due []models.Habit, date string) int {
	if len(due) == 0 {
		return constants.NoObligationScore
	}

	total := 0.0
	for _, h := range due {
		l, ok := snap.Log(h.ID, date)
		if !ok {
			continue
		}
		total += contribution(l.Progress, h.Target)
	}

	return round(total / float64(len(due)) * 100)
}

// contribution is progress/target with progress clamped into [0, target].
func contribution(progress, target int) float64 {
	if target <= 0 {
		// A habit without a usable target counts as done once anything is logged.
		if progress > 0 {
			return 1
		}
		return 0
	}
	if progress < 0 {
		progress = 0
	}
	if progress > target {
		progress = target
	}
	return float64(progress) / float64(target)
}

// ConsistencyScore averages daily percentages over the windowDays days
// ending today. Days with nothing due are left out; excused days count as
// a flat 50. No habits at all, or no day with anything due, scores 100.
func (e *Engine) ConsistencyScore(snap Snapshot, windowDays int) int {
	if len(snap.Habits()) == 0 {
		return constants.NoObligationScore
	}
	if windowDays <= 0 {
		windowDays = constants.DefaultConsistencyWindowDays
	}

	total := 0
	counted := 0
	for i := 0; i < windowDays; i++ {
		date := e.cal.DaysAgo(i)
		due := e.ScheduledOn(snap, date)
		if len(due) == 0 {
			continue
		}
		counted++

		if snap.Status(date).Excused() {
			total += constants.ExcusedDayScore
			continue
		}
		total += dailyPercentage(snap, due, date)
	}

	if counted == 0 {
		return constants.NoObligationScore
	}
	return round(float64(total) / float64(counted))
}

// Streak counts consecutive qualifying days walking back from today.
//
// A day qualifies when it is excused or at least half complete. Days with
// nothing due are passed over without counting. Today never breaks the
// streak: an unfinished today is simply not counted yet. The first past day
// that does not qualify ends the walk.
func (e *Engine) Streak(snap Snapshot) int {
	if len(snap.Habits()) == 0 {
		return 0
	}

	streak := 0
	for i := 0; i < constants.StreakHorizonDays; i++ {
		date := e.cal.DaysAgo(i)
		due := e.ScheduledOn(snap, date)
		if len(due) == 0 {
			continue
		}

		if snap.Status(date).Excused() {
			streak++
			continue
		}

		if dailyPercentage(snap, due, date) >= constants.StreakThreshold {
			streak++
			continue
		}

		if i == 0 {
			continue
		}
		break
	}

	return streak
}

func round(v float64) int {
	return int(math.Round(v))
}

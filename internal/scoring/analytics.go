package scoring

import "github.com/julianstephens/journl/internal/models"

// DayCell is one square of the completion heatmap.
type DayCell struct {
	Date       string `json:"date" yaml:"date"`
	Percentage int    `json:"percentage" yaml:"percentage"`
	HasHabits  bool   `json:"has_habits" yaml:"has_habits"`
}

// MoodPoint is the average mood logged on a date. Average is nil when no
// entry was written that day.
type MoodPoint struct {
	Date    string   `json:"date" yaml:"date"`
	Average *float64 `json:"average,omitempty" yaml:"average,omitempty"`
	Entries int      `json:"entries" yaml:"entries"`
}

// CategoryCount is the number of habits in a category.
type CategoryCount struct {
	Category models.HabitCategory `json:"category" yaml:"category"`
	Count    int                  `json:"count" yaml:"count"`
}

// Dashboard bundles the headline numbers shown for today.
type Dashboard struct {
	Date        string                 `json:"date" yaml:"date"`
	Percentage  int                    `json:"percentage" yaml:"percentage"`
	Range       models.PercentageRange `json:"range" yaml:"range"`
	Consistency int                    `json:"consistency" yaml:"consistency"`
	Streak      int                    `json:"streak" yaml:"streak"`
	Status      models.DayStatusType   `json:"status" yaml:"status"`
}

// Heatmap returns one cell per day for the last days days, oldest first.
func (e *Engine) Heatmap(snap Snapshot, days int) []DayCell {
	dates := e.window(days)
	cells := make([]DayCell, 0, len(dates))
	for _, date := range dates {
		due := e.ScheduledOn(snap, date)
		cells = append(cells, DayCell{
			Date:       date,
			Percentage: dailyPercentage(snap, due, date),
			HasHabits:  len(due) > 0,
		})
	}
	return cells
}

// MoodSeries averages journal moods per day for the last days days, oldest first.
func (e *Engine) MoodSeries(entries []models.JournalEntry, days int) []MoodPoint {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, entry := range entries {
		sums[entry.Date] += int(entry.Mood)
		counts[entry.Date]++
	}

	dates := e.window(days)
	points := make([]MoodPoint, 0, len(dates))
	for _, date := range dates {
		p := MoodPoint{Date: date, Entries: counts[date]}
		if p.Entries > 0 {
			avg := float64(sums[date]) / float64(p.Entries)
			p.Average = &avg
		}
		points = append(points, p)
	}
	return points
}

// window returns the last days dates ending today, oldest first.
func (e *Engine) window(days int) []string {
	today := e.cal.Today()
	return e.cal.DaysInRange(e.cal.AddDays(today, 1-days), today)
}

// CategoryBreakdown counts habits per category, skipping empty categories.
func CategoryBreakdown(habits []models.Habit) []CategoryCount {
	counts := make(map[models.HabitCategory]int)
	for _, h := range habits {
		counts[h.Category]++
	}

	var out []CategoryCount
	for _, c := range models.Categories {
		if counts[c] > 0 {
			out = append(out, CategoryCount{Category: c, Count: counts[c]})
			delete(counts, c)
		}
	}
	// Unknown categories from hand-edited data go under custom.
	for _, n := range counts {
		out = appendCustom(out, n)
	}
	return out
}

func appendCustom(out []CategoryCount, n int) []CategoryCount {
	for i := range out {
		if out[i].Category == models.CategoryCustom {
			out[i].Count += n
			return out
		}
	}
	return append(out, CategoryCount{Category: models.CategoryCustom, Count: n})
}

// Summary computes today's dashboard numbers.
func (e *Engine) Summary(snap Snapshot, windowDays int) Dashboard {
	today := e.cal.Today()
	pct := e.DailyPercentage(snap, today)
	return Dashboard{
		Date:        today,
		Percentage:  pct,
		Range:       models.RangeOf(pct),
		Consistency: e.ConsistencyScore(snap, windowDays),
		Streak:      e.Streak(snap),
		Status:      snap.Status(today),
	}
}

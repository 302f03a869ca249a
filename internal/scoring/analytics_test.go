package scoring

import (
	"reflect"
	"testing"

	"github.com/julianstephens/journl/internal/models"
)

func TestHeatmap(t *testing.T) {
	e := newTestEngine()
	h := newHabit("h", 2, 2, everyDay)
	snap := NewSnapshot([]models.Habit{h}, []models.HabitLog{logOn(e, "h", 0, 1, 2), logOn(e, "h", 1, 2, 2)}, nil)

	cells := e.Heatmap(snap, 4)
	want := []DayCell{
		{Date: "2024-03-10", Percentage: 100, HasHabits: false},
		{Date: "2024-03-11", Percentage: 0, HasHabits: true},
		{Date: "2024-03-12", Percentage: 100, HasHabits: true},
		{Date: "2024-03-13", Percentage: 50, HasHabits: true},
	}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("Heatmap() = %+v, want %+v", cells, want)
	}
}

func TestAnalyticsWindow(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		name  string
		days  int
		first string
		n     int
	}{
		{"crosses leap day", 15, "2024-02-28", 15},
		{"today only", 1, "2024-03-13", 1},
		{"empty", 0, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := e.Heatmap(NewSnapshot(nil, nil, nil), tt.days)
			points := e.MoodSeries(nil, tt.days)
			if len(cells) != tt.n || len(points) != tt.n {
				t.Fatalf("got %d cells and %d points, want %d", len(cells), len(points), tt.n)
			}
			if tt.n == 0 {
				return
			}
			if cells[0].Date != tt.first || points[0].Date != tt.first {
				t.Errorf("window starts %s/%s, want %s", cells[0].Date, points[0].Date, tt.first)
			}
			if last := cells[len(cells)-1].Date; last != "2024-03-13" {
				t.Errorf("window ends %s, want 2024-03-13", last)
			}
		})
	}
}

func TestMoodSeries(t *testing.T) {
	e := newTestEngine()
	entries := []models.JournalEntry{
		{ID: "a", Date: "2024-03-13", Mood: 5},
		{ID: "b", Date: "2024-03-13", Mood: 2},
		{ID: "c", Date: "2024-03-11", Mood: 4},
		{ID: "d", Date: "2024-01-01", Mood: 1},
	}

	points := e.MoodSeries(entries, 3)
	if len(points) != 3 {
		t.Fatalf("MoodSeries() returned %d points, want 3", len(points))
	}
	if points[0].Date != "2024-03-11" || points[0].Average == nil || *points[0].Average != 4 {
		t.Errorf("points[0] = %+v, want 2024-03-11 average 4", points[0])
	}
	if points[1].Average != nil || points[1].Entries != 0 {
		t.Errorf("points[1] = %+v, want no entries", points[1])
	}
	if points[2].Average == nil || *points[2].Average != 3.5 || points[2].Entries != 2 {
		t.Errorf("points[2] = %+v, want average 3.5 over 2 entries", points[2])
	}
}

func TestCategoryBreakdown(t *testing.T) {
	habits := []models.Habit{
		{ID: "1", Category: models.CategoryMind},
		{ID: "2", Category: models.CategoryHealth},
		{ID: "3", Category: models.CategoryMind},
		{ID: "4", Category: "gardening"},
	}

	got := CategoryBreakdown(habits)
	want := []CategoryCount{
		{Category: models.CategoryHealth, Count: 1},
		{Category: models.CategoryMind, Count: 2},
		{Category: models.CategoryCustom, Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryBreakdown() = %+v, want %+v", got, want)
	}

	if got := CategoryBreakdown(nil); len(got) != 0 {
		t.Errorf("CategoryBreakdown(nil) = %+v, want empty", got)
	}
}

func TestSummary(t *testing.T) {
	e := newTestEngine()
	h := newHabit("h", 4, 3, everyDay)
	logs := []models.HabitLog{logOn(e, "h", 0, 3, 4), logOn(e, "h", 1, 4, 4), logOn(e, "h", 2, 4, 4)}
	snap := NewSnapshot([]models.Habit{h}, logs, nil)

	got := e.Summary(snap, 30)
	if got.Date != "2024-03-13" {
		t.Errorf("Summary().Date = %q", got.Date)
	}
	if got.Percentage != 75 || got.Range != models.RangeGood {
		t.Errorf("Summary() percentage = %d (%s), want 75 (good)", got.Percentage, got.Range)
	}
	// 75 + 100 + 100 + 0 over four due days
	if got.Consistency != 69 {
		t.Errorf("Summary().Consistency = %d, want 69", got.Consistency)
	}
	if got.Streak != 3 {
		t.Errorf("Summary().Streak = %d, want 3", got.Streak)
	}
	if got.Status != models.StatusNormal {
		t.Errorf("Summary().Status = %q, want normal", got.Status)
	}
}

package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	jerrors "github.com/julianstephens/journl/internal/errors"
	"github.com/julianstephens/journl/internal/models"
	"github.com/julianstephens/journl/internal/state"
	"github.com/julianstephens/journl/internal/storage"
	"github.com/julianstephens/journl/internal/utils"
)

var testNow = time.Date(2024, 3, 13, 9, 30, 0, 0, time.UTC)

func setupTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "journl.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := NewContext(store, utils.Calendar{Location: time.UTC, Now: func() time.Time { return testNow }})
	out := &bytes.Buffer{}
	ctx.Out = out
	return ctx, out
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		input   string
		want    []models.Weekday
		wantErr bool
	}{
		{"daily", models.Weekdays, false},
		{"weekends", []models.Weekday{models.Saturday, models.Sunday}, false},
		{"mon, Wed,friday", []models.Weekday{models.Monday, models.Wednesday, models.Friday}, false},
		{"0,6", []models.Weekday{models.Sunday, models.Saturday}, false},
		{"mon,mon", []models.Weekday{models.Monday}, false},
		{"", []models.Weekday{}, false},
		{"funday", nil, true},
		{"7", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !slices.Equal(got, tt.want) {
				t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFrequency(t *testing.T) {
	if FormatFrequency(models.Weekdays) != "daily" {
		t.Error("expected daily")
	}
	if FormatFrequency(nil) != "never" {
		t.Error("expected never")
	}
	if got := FormatFrequency([]models.Weekday{models.Monday, models.Friday}); got != "Mon,Fri" {
		t.Errorf("unexpected %q", got)
	}
}

func TestResolveDate(t *testing.T) {
	ctx, _ := setupTestContext(t)

	tests := []struct {
		input string
		want  string
	}{
		{"", "2024-03-13"},
		{"today", "2024-03-13"},
		{"Yesterday", "2024-03-12"},
		{"2024-01-02", "2024-01-02"},
	}
	for _, tt := range tests {
		got, err := ctx.ResolveDate(tt.input)
		if err != nil || got != tt.want {
			t.Errorf("ResolveDate(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
	}

	if _, err := ctx.ResolveDate("13/03/2024"); !errors.Is(err, jerrors.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestFindHabit(t *testing.T) {
	s := state.Default()
	s.Habits = []models.Habit{{ID: "h1", Name: "Read"}}

	if h, err := FindHabit(s, " read "); err != nil || h.ID != "h1" {
		t.Errorf("expected to find by name, got %+v %v", h, err)
	}
	if _, err := FindHabit(s, "swim"); !errors.Is(err, jerrors.ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestLoadReplenishesCredits(t *testing.T) {
	ctx, _ := setupTestContext(t)

	s := state.Default()
	s.Credits = models.Credits{Skip: 0, Sick: 1, Emergency: 0, MonthReset: "2024-02"}
	if err := storage.SaveAll(ctx.Store, s); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	loaded, err := ctx.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := models.Credits{Skip: 2, Sick: 2, Emergency: 1, MonthReset: "2024-03"}
	if loaded.Credits != want {
		t.Errorf("expected replenished credits %+v, got %+v", want, loaded.Credits)
	}

	stored, _ := storage.LoadState(ctx.Store)
	if stored.Credits != want {
		t.Errorf("expected replenished credits to be saved, got %+v", stored.Credits)
	}

	// Spending within the same month is not undone by the next load.
	stored.Credits.Skip = 1
	if err := storage.SaveState(ctx.Store, loaded, stored); err != nil {
		t.Fatal(err)
	}
	again, _ := ctx.Load()
	if again.Credits.Skip != 1 {
		t.Errorf("expected same-month load to keep spent credits, got %+v", again.Credits)
	}
}

func TestDispatchUnlocksMilestones(t *testing.T) {
	ctx, out := setupTestContext(t)

	s, err := ctx.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	next, err := ctx.Dispatch(s, state.AddJournalEntry{Mood: 4, Content: "first"})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if len(next.UnlockedMilestones) == 0 {
		t.Fatal("expected the first-entry milestone to unlock")
	}
	if !strings.Contains(out.String(), "Milestone unlocked") {
		t.Errorf("expected unlock message, got %q", out.String())
	}

	stored, _ := storage.LoadState(ctx.Store)
	if len(stored.JournalEntries) != 1 || len(stored.UnlockedMilestones) != len(next.UnlockedMilestones) {
		t.Errorf("expected entry and milestones to be saved, got %+v", stored)
	}

	out.Reset()
	if _, err := ctx.Dispatch(next); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "Milestone unlocked") {
		t.Error("expected milestones to unlock only once")
	}
}

func TestPercentageStyles(t *testing.T) {
	if !strings.Contains(Percentage(58), "58% (Good)") {
		t.Errorf("unexpected percentage rendering %q", Percentage(58))
	}
	if got := Bar(50, 10); strings.Count(got, "█") != 5 || strings.Count(got, "░") != 5 {
		t.Errorf("unexpected bar %q", got)
	}
}

package insights

import (
	"slices"
	"strings"
	"testing"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/cli/clitest"
	"github.com/julianstephens/journl/internal/encouragement"
	"github.com/julianstephens/journl/internal/models"
	"github.com/julianstephens/journl/internal/scoring"
	"github.com/julianstephens/journl/internal/state"
	"github.com/julianstephens/journl/internal/storage"
)

// seed writes a habit completed today and one journal entry, bypassing
// milestone unlocking so the commands under test get to do it.
func seed(t *testing.T, ctx *cli.Context) {
	t.Helper()
	s, err := ctx.Load()
	if err != nil {
		t.Fatal(err)
	}
	next := ctx.Reducer.Reduce(s, state.AddHabit{Habit: models.Habit{
		Name: "Water", Emoji: "💧", Category: models.CategoryHealth,
		Frequency: slices.Clone(models.Weekdays), Target: 1, Unit: "glass",
	}})
	next = ctx.Reducer.Reduce(next, state.ToggleHabit{HabitID: next.Habits[0].ID, Date: "2024-03-13"})
	next = ctx.Reducer.Reduce(next, state.AddJournalEntry{Mood: 5, Content: "good day"})
	if err := storage.SaveState(ctx.Store, s, next); err != nil {
		t.Fatal(err)
	}
}

func TestTodayWelcomesEmptyJournal(t *testing.T) {
	ctx, out := clitest.New(t)

	if err := (&TodayCmd{}).Run(ctx); err != nil {
		t.Fatalf("today failed: %v", err)
	}
	if !strings.Contains(out.String(), encouragement.WelcomeBack[0]) {
		t.Errorf("expected welcome message, got %q", out.String())
	}
	if !strings.Contains(out.String(), "100% (Great)") {
		t.Errorf("expected a free day to score 100%%, got %q", out.String())
	}
}

func TestTodayDashboard(t *testing.T) {
	ctx, out := clitest.New(t)
	seed(t, ctx)

	if err := (&TodayCmd{}).Run(ctx); err != nil {
		t.Fatalf("today failed: %v", err)
	}

	for _, want := range []string{
		"journl · 2024-03-13",
		"100% (Great)",
		"Streak       1 day(s)",
		"Water  1/1 glass",
		encouragement.OnComplete[0],
		"Milestone unlocked",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in %q", want, out.String())
		}
	}
	if strings.Contains(out.String(), encouragement.WelcomeBack[0]) {
		t.Error("did not expect a welcome message")
	}

	unlocked := clitest.State(t, ctx).UnlockedMilestones
	for _, id := range []string{"first_entry", "first_habit", "first_check"} {
		if !slices.Contains(unlocked, id) {
			t.Errorf("expected %s to be persisted, got %v", id, unlocked)
		}
	}
}

func TestMilestones(t *testing.T) {
	ctx, out := clitest.New(t)
	seed(t, ctx)

	if err := (&MilestonesCmd{}).Run(ctx); err != nil {
		t.Fatalf("milestones failed: %v", err)
	}
	if strings.Contains(out.String(), "🔒") {
		t.Errorf("did not expect locked milestones without --all, got %q", out.String())
	}
	if !strings.Contains(out.String(), "3 of ") {
		t.Errorf("expected 3 unlocked milestones, got %q", out.String())
	}

	out.Reset()
	if err := (&MilestonesCmd{All: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "🔒 5 Journal Entries (1/5)") {
		t.Errorf("expected locked progress, got %q", out.String())
	}
	if strings.Contains(out.String(), "Milestone unlocked") {
		t.Error("expected milestones to unlock only once")
	}
}

func TestMilestonesSkipsUnknownIDs(t *testing.T) {
	ctx, out := clitest.New(t)
	seed(t, ctx)

	s := clitest.State(t, ctx)
	next := s
	next.UnlockedMilestones = append(slices.Clone(s.UnlockedMilestones), "retired_badge")
	if err := storage.SaveState(ctx.Store, s, next); err != nil {
		t.Fatal(err)
	}

	if err := (&MilestonesCmd{}).Run(ctx); err != nil {
		t.Fatalf("milestones failed: %v", err)
	}
	if strings.Contains(out.String(), "retired_badge") {
		t.Errorf("did not expect unknown milestone in %q", out.String())
	}
	if !strings.Contains(out.String(), "3 of ") {
		t.Errorf("expected unknown ids to be left out of the count, got %q", out.String())
	}
}

func TestAnalytics(t *testing.T) {
	ctx, out := clitest.New(t)
	seed(t, ctx)

	if err := (&AnalyticsCmd{Days: 14}).Run(ctx); err != nil {
		t.Fatalf("analytics failed: %v", err)
	}
	for _, want := range []string{"last 14 days", "health", "█", "Streak 1", "Entries 1"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in %q", want, out.String())
		}
	}

	if err := (&AnalyticsCmd{Days: 0}).Run(ctx); err == nil {
		t.Error("expected --days 0 to be rejected")
	}
}

func TestMoodLine(t *testing.T) {
	avg := 4.6
	low := 0.2
	got := moodLine([]scoring.MoodPoint{{Date: "2024-03-11"}, {Date: "2024-03-12", Average: &avg}, {Date: "2024-03-13", Average: &low}})
	if !strings.HasSuffix(got, "█▁") {
		t.Errorf("unexpected sparkline %q", got)
	}
}

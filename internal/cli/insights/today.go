package insights

import (
	"fmt"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/encouragement"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	if len(s.JournalEntries) == 0 && len(s.Habits) == 0 {
		ctx.Println(ctx.Picker.Pick(encouragement.WelcomeBack))
	}

	// Persist anything earned since the last save.
	if s, err = ctx.Dispatch(s); err != nil {
		return err
	}

	snap := s.Snapshot()
	d := ctx.Engine.Summary(snap, s.Settings.ConsistencyWindowDays)

	ctx.Println(cli.Title.Render(fmt.Sprintf("journl · %s", d.Date)))
	ctx.Printf("Today        %s %s\n", cli.Bar(d.Percentage, 20), cli.Percentage(d.Percentage))
	ctx.Printf("Consistency  %d%% over %d days\n", d.Consistency, s.Settings.ConsistencyWindowDays)
	ctx.Printf("Streak       %d day(s)\n", d.Streak)
	if d.Status.Excused() {
		ctx.Println(cli.Warning.Render(fmt.Sprintf("Today is a %s day. No pressure.", d.Status)))
	}

	due := s.TodayHabits(ctx.Calendar)
	if len(due) > 0 {
		title := "Habits"
		if s.FocusMode {
			title = "Focus"
		}
		ctx.Println()
		ctx.Println(cli.Title.Render(title))
		for _, h := range due {
			progress := 0
			if log, ok := snap.Log(h.ID, d.Date); ok {
				progress = log.Progress
			}
			mark := "○"
			if progress >= h.Target {
				mark = cli.Success.Render("✓")
			}
			ctx.Printf("  %s %s %s  %d/%d %s\n", mark, h.Emoji, h.Name, progress, h.Target, h.Unit)
		}
	}

	if msg := ctx.Picker.ForPercentage(d.Percentage); msg != "" {
		ctx.Println()
		ctx.Println(msg)
	}
	return nil
}

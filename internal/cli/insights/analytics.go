package insights

import (
	"fmt"
	"strings"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/scoring"
)

type AnalyticsCmd struct {
	Days int `help:"Days of history to show." default:"28"`
}

func (c *AnalyticsCmd) Run(ctx *cli.Context) error {
	if c.Days < 1 {
		return fmt.Errorf("--days must be at least 1")
	}
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	snap := s.Snapshot()

	ctx.Println(cli.Title.Render(fmt.Sprintf("Completion, last %d days", c.Days)))
	cells := ctx.Engine.Heatmap(snap, c.Days)
	var row strings.Builder
	for i, cell := range cells {
		row.WriteString(cli.HeatCell(cell.Percentage, cell.HasHabits))
		if (i+1)%7 == 0 {
			ctx.Println(row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		ctx.Println(row.String())
	}

	ctx.Println()
	ctx.Println(cli.Title.Render("Mood"))
	ctx.Println(moodLine(ctx.Engine.MoodSeries(s.JournalEntries, c.Days)))

	ctx.Println()
	ctx.Println(cli.Title.Render("Habits by category"))
	for _, cc := range scoring.CategoryBreakdown(s.Habits) {
		ctx.Printf("  %-13s %d\n", cc.Category, cc.Count)
	}

	d := ctx.Engine.Summary(snap, s.Settings.ConsistencyWindowDays)
	ctx.Println()
	ctx.Printf("Consistency %d%% · Streak %d · Entries %d\n", d.Consistency, d.Streak, len(s.JournalEntries))
	return nil
}

var moodGlyphs = []string{"▁", "▂", "▄", "▆", "█"}

// moodLine draws a sparkline of daily average mood, "·" for empty days.
func moodLine(points []scoring.MoodPoint) string {
	var b strings.Builder
	for _, p := range points {
		if p.Average == nil {
			b.WriteString(cli.Muted.Render("·"))
			continue
		}
		i := int(*p.Average+0.5) - 1
		b.WriteString(moodGlyphs[max(0, min(len(moodGlyphs)-1, i))])
	}
	return b.String()
}

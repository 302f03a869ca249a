package habits

import (
	"fmt"
	"strings"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/models"
)

type HabitWeekCmd struct {
	Date string `help:"Any date in the week to show." default:"today"`
}

func (c *HabitWeekCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	week := ctx.Calendar.WeekOf(date)
	snap := s.Snapshot()

	header := make([]string, len(week))
	for i, d := range week {
		header[i] = fmt.Sprintf("%-4s", ctx.Calendar.WeekdayOf(d))
	}
	ctx.Printf("%-22s %s\n", "", strings.Join(header, ""))

	for _, h := range s.Habits {
		cells := make([]string, len(week))
		for i, d := range week {
			switch {
			case !ctx.Calendar.IsScheduled(h, d):
				cells[i] = cli.Muted.Render(" ·  ")
			case snap.Status(d).Excused():
				cells[i] = cli.Warning.Render(" ~  ")
			default:
				log, ok := snap.Log(h.ID, d)
				switch {
				case ok && log.Progress >= h.Target:
					cells[i] = cli.Success.Render(" ✓  ")
				case ok && log.Progress > 0:
					cells[i] = " ½  "
				default:
					cells[i] = " ○  "
				}
			}
		}
		ctx.Printf("%-22s %s\n", h.Emoji+" "+h.Name, strings.Join(cells, ""))
	}

	pcts := make([]string, len(week))
	for i, d := range week {
		pct := ctx.Engine.DailyPercentage(snap, d)
		pcts[i] = cli.RangeStyle(models.RangeOf(pct)).Render(fmt.Sprintf("%3d%%", pct))
	}
	ctx.Printf("%-22s %s\n", "", strings.Join(pcts, ""))
	return nil
}

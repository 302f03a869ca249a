package insights

import (
	"fmt"
	"slices"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/logger"
)

type MilestonesCmd struct {
	All bool `help:"Also show locked milestones."`
}

func (c *MilestonesCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	if s, err = ctx.Dispatch(s); err != nil {
		return err
	}

	// Unlocked milestones print in the order they were earned.
	unlocked := 0
	for _, id := range s.UnlockedMilestones {
		m, ok := ctx.Catalog.Find(id)
		if !ok {
			logger.Debug("Skipping unknown milestone", "id", id)
			continue
		}
		unlocked++
		ctx.Printf("%s %s\n", m.Emoji, m.Label)
	}

	if c.All {
		stats := ctx.Stats(s)
		for _, m := range ctx.Catalog {
			if slices.Contains(s.UnlockedMilestones, m.ID) {
				continue
			}
			value, _ := stats.Value(m.Kind)
			ctx.Printf("%s\n", cli.Muted.Render(fmt.Sprintf("🔒 %s (%d/%d)", m.Label, min(value, m.Threshold), m.Threshold)))
		}
	}

	ctx.Printf("\n%d of %d milestones unlocked\n", unlocked, len(ctx.Catalog))
	return nil
}

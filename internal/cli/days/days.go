package days

import (
	"fmt"
	"strings"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/ledger"
	"github.com/julianstephens/journl/internal/models"
	"github.com/julianstephens/journl/internal/state"
)

type DayCmd struct {
	Status    DayStatusCmd    `cmd:"" help:"Show or set a day's status without spending a credit."`
	UseCredit DayUseCreditCmd `cmd:"" name:"use-credit" help:"Spend a skip, sick or emergency credit on a day."`
}

type DayStatusCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD, today or yesterday)." default:"today"`
	Set  string `help:"New status: normal, skip, sick or emergency."`
}

func (c *DayStatusCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	if c.Set != "" {
		status := models.DayStatusType(strings.ToLower(c.Set))
		if !status.Valid() {
			return fmt.Errorf("invalid status %q (expected normal, skip, sick or emergency)", c.Set)
		}
		if s, err = ctx.Dispatch(s, state.SetDayStatus{Date: date, Status: status}); err != nil {
			return fmt.Errorf("failed to set day status: %w", err)
		}
	}

	snap := s.Snapshot()
	ctx.Printf("%s: %s\n", date, ledger.StatusOn(s.DayStatuses, date))
	ctx.Printf("Completion: %s\n", cli.Percentage(ctx.Engine.DailyPercentage(snap, date)))
	return nil
}

type DayUseCreditCmd struct {
	Kind string `arg:"" help:"Credit kind: skip, sick or emergency." enum:"skip,sick,emergency"`
	Date string `help:"Date to excuse (YYYY-MM-DD, today or yesterday)." default:"today"`
}

func (c *DayUseCreditCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	kind := models.DayStatusType(c.Kind)
	if s.Credits.Balance(kind) <= 0 {
		return fmt.Errorf("no %s credits left this month", kind)
	}

	next, err := ctx.Dispatch(s, state.UseCredit{Kind: kind, Date: date})
	if err != nil {
		return fmt.Errorf("failed to use credit: %w", err)
	}

	ctx.Printf("Marked %s as %s. Your streak is safe.\n", date, kind)
	ctx.Printf("%d %s credit(s) left this month.\n", next.Credits.Balance(kind), kind)
	return nil
}

type CreditsCmd struct{}

func (c *CreditsCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	ctx.Println(cli.Title.Render("Streak protection credits"))
	for _, kind := range []models.DayStatusType{models.StatusSkip, models.StatusSick, models.StatusEmergency} {
		ctx.Printf("  %-10s %d/%d\n", kind, s.Credits.Balance(kind), models.Allotment(kind))
	}
	if s.Credits.MonthReset != "" {
		ctx.Println(cli.Muted.Render("  Replenished for " + s.Credits.MonthReset))
	}
	return nil
}

package habits

import (
	"fmt"
	"strings"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/models"
	"github.com/julianstephens/journl/internal/state"
	"github.com/julianstephens/journl/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its logs."`
	Toggle HabitToggleCmd `cmd:"" help:"Mark a habit done or undone for a day."`
	Inc    HabitIncCmd    `cmd:"" help:"Add progress toward a habit's target."`
	Week   HabitWeekCmd   `cmd:"" help:"Show this week's grid for every habit."`
}

type HabitAddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Emoji    string `help:"Emoji shown next to the habit."`
	Category string `help:"health, mind, productivity or custom." default:"custom"`
	Days     string `help:"Scheduled days: daily, weekdays, weekends or a list like mon,wed,fri." default:"daily"`
	Target   int    `help:"Daily target amount." default:"1"`
	Unit     string `help:"Unit of the target, e.g. glasses." default:"times"`
	Reminder string `help:"Reminder time (HH:MM), stored only."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	days, err := cli.ParseWeekdays(c.Days)
	if err != nil {
		return err
	}

	h := models.Habit{
		Name:         strings.TrimSpace(c.Name),
		Emoji:        c.Emoji,
		Category:     models.HabitCategory(strings.ToLower(c.Category)),
		Frequency:    days,
		Target:       c.Target,
		Unit:         c.Unit,
		ReminderTime: c.Reminder,
	}

	s, err := ctx.Load()
	if err != nil {
		return err
	}
	if err := check(ctx, s, h); err != nil {
		return err
	}

	if _, err := ctx.Dispatch(s, state.AddHabit{Habit: h}); err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}

	ctx.Printf("Added habit: %s %s (%d %s, %s)\n", h.Emoji, h.Name, h.Target, h.Unit, cli.FormatFrequency(h.Frequency))
	return nil
}

// check validates h, printing warnings and returning errors.
func check(ctx *cli.Context, s state.State, h models.Habit) error {
	problems := validation.ValidateHabit(h)
	problems = append(problems, validation.ValidateUniqueName(s.Habits, h)...)
	for _, w := range problems.Warnings() {
		ctx.Printf("%s\n", cli.Warning.Render("Warning: "+w.String()))
	}
	if err := problems.Err(); err != nil {
		return fmt.Errorf("invalid habit: %w", err)
	}
	return nil
}

type HabitListCmd struct {
	Today bool `help:"Only habits due today (respects focus mode)."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	habits := s.Habits
	if c.Today {
		habits = s.TodayHabits(ctx.Calendar)
	}
	if len(habits) == 0 {
		ctx.Println("No habits found.")
		return nil
	}

	today := ctx.Calendar.Today()
	for _, h := range habits {
		progress := 0
		if log, ok := s.FindLog(h.ID, today); ok {
			progress = log.Progress
		}
		mark := " "
		if progress >= h.Target {
			mark = "✓"
		}
		ctx.Printf("[%s] %s %-20s %d/%d %-8s %-12s %s\n",
			mark, h.Emoji, h.Name, progress, h.Target, h.Unit, h.Category,
			cli.Muted.Render(cli.FormatFrequency(h.Frequency)+"  "+h.ID))
	}
	return nil
}

type HabitEditCmd struct {
	Habit    string  `arg:"" help:"Habit name or id."`
	Name     *string `help:"New name."`
	Emoji    *string `help:"New emoji."`
	Category *string `help:"New category."`
	Days     *string `help:"New schedule."`
	Target   *int    `help:"New target."`
	Unit     *string `help:"New unit."`
	Reminder *string `help:"New reminder time (HH:MM), empty to clear."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	h, err := cli.FindHabit(s, c.Habit)
	if err != nil {
		return err
	}

	if c.Name != nil {
		h.Name = strings.TrimSpace(*c.Name)
	}
	if c.Emoji != nil {
		h.Emoji = *c.Emoji
	}
	if c.Category != nil {
		h.Category = models.HabitCategory(strings.ToLower(*c.Category))
	}
	if c.Days != nil {
		days, err := cli.ParseWeekdays(*c.Days)
		if err != nil {
			return err
		}
		h.Frequency = days
	}
	if c.Target != nil {
		h.Target = *c.Target
	}
	if c.Unit != nil {
		h.Unit = *c.Unit
	}
	if c.Reminder != nil {
		h.ReminderTime = *c.Reminder
	}

	if err := check(ctx, s, h); err != nil {
		return err
	}
	if _, err := ctx.Dispatch(s, state.UpdateHabit{Habit: h}); err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	ctx.Printf("Updated habit: %s\n", h.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	h, err := cli.FindHabit(s, c.Habit)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	if _, err := ctx.Dispatch(s, state.DeleteHabit{ID: h.ID}); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	ctx.Printf("Deleted habit: %s\n", h.Name)
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Date  string `help:"Date (YYYY-MM-DD, today or yesterday)." default:"today"`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	h, err := cli.FindHabit(s, c.Habit)
	if err != nil {
		return err
	}

	next, err := ctx.Dispatch(s, state.ToggleHabit{HabitID: h.ID, Date: date})
	if err != nil {
		return fmt.Errorf("failed to toggle habit: %w", err)
	}

	log, _ := next.FindLog(h.ID, date)
	if log.Completed {
		ctx.Printf("✓ %s done for %s\n", h.Name, date)
	} else {
		ctx.Printf("○ %s not done for %s\n", h.Name, date)
	}
	report(ctx, next, date)
	return nil
}

type HabitIncCmd struct {
	Habit  string `arg:"" help:"Habit name or id."`
	Amount int    `arg:"" optional:"" help:"Amount to add (negative to undo)." default:"1"`
	Date   string `help:"Date (YYYY-MM-DD, today or yesterday)." default:"today"`
}

func (c *HabitIncCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	h, err := cli.FindHabit(s, c.Habit)
	if err != nil {
		return err
	}

	next, err := ctx.Dispatch(s, state.IncrementHabit{HabitID: h.ID, Date: date, Amount: c.Amount})
	if err != nil {
		return fmt.Errorf("failed to record progress: %w", err)
	}

	log, _ := next.FindLog(h.ID, date)
	ctx.Printf("%s: %d/%d %s\n", h.Name, log.Progress, h.Target, h.Unit)
	report(ctx, next, date)
	return nil
}

// report prints the day's percentage and an encouragement line.
func report(ctx *cli.Context, s state.State, date string) {
	pct := ctx.Engine.DailyPercentage(s.Snapshot(), date)
	ctx.Printf("%s: %s\n", date, cli.Percentage(pct))
	if msg := ctx.Picker.ForPercentage(pct); msg != "" {
		ctx.Println(msg)
	}
}

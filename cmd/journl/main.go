package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/cli/backups"
	"github.com/julianstephens/journl/internal/cli/days"
	"github.com/julianstephens/journl/internal/cli/habits"
	"github.com/julianstephens/journl/internal/cli/insights"
	"github.com/julianstephens/journl/internal/cli/journal"
	"github.com/julianstephens/journl/internal/cli/settings"
	"github.com/julianstephens/journl/internal/cli/system"
	"github.com/julianstephens/journl/internal/constants"
	jerrors "github.com/julianstephens/journl/internal/errors"
	"github.com/julianstephens/journl/internal/logger"
	"github.com/julianstephens/journl/internal/storage"
	"github.com/julianstephens/journl/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Store path. A .json suffix selects the JSON file store." type:"path" default:"~/.config/journl/journl.db" env:"JOURNL_CONFIG"`
	Debug    bool   `help:"Log debug output to stderr."`
	LogLevel string `help:"Log file threshold: debug, info, warn or error."`
	Timezone string `help:"Override the stored timezone for this command."`

	Init       system.InitCmd         `cmd:"" help:"Initialize journl storage."`
	Today      insights.TodayCmd      `cmd:"" default:"1" help:"Show today's dashboard."`
	Habit      habits.HabitCmd        `cmd:"" help:"Manage and check off habits."`
	Journal    journal.JournalCmd     `cmd:"" help:"Write and browse journal entries."`
	Day        days.DayCmd            `cmd:"" help:"Manage day statuses."`
	Credits    days.CreditsCmd        `cmd:"" help:"Show streak protection credits."`
	Milestones insights.MilestonesCmd `cmd:"" help:"Show unlocked milestones."`
	Analytics  insights.AnalyticsCmd  `cmd:"" help:"Show heatmap, mood and category analytics."`
	Settings   settings.SettingsCmd   `cmd:"" help:"Manage application settings."`
	Tag        settings.TagCmd        `cmd:"" help:"Manage journal tags."`
	Theme      settings.ThemeCmd      `cmd:"" help:"Show or set the theme."`
	Focus      settings.FocusCmd      `cmd:"" help:"Toggle focus mode."`
	Backup     backups.BackupCmd      `cmd:"" help:"Manage backups."`
	Export     system.ExportCmd       `cmd:"" help:"Export all data as JSON or YAML."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Zero-guilt journal and habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{ConfigDir: filepath.Dir(CLI.Config), Debug: CLI.Debug, Level: CLI.LogLevel}); err != nil {
		jerrors.Fatal(err)
	}
	defer logger.Close()

	store := storage.New(CLI.Config)
	defer store.Close()

	isInit := ctx.Selected() != nil && ctx.Selected().Name == "init"
	timezone := CLI.Timezone
	if !isInit {
		if err := store.Load(); err != nil {
			jerrors.Fatal(err)
		}
		if timezone == "" {
			s, err := storage.LoadState(store)
			if err != nil {
				jerrors.Fatal(err)
			}
			timezone = s.Settings.Timezone
		}
	}

	loc, err := utils.LoadLocation(timezone)
	if err != nil {
		jerrors.Fatal(err)
	}
	logger.Debug("Starting journl", "command", ctx.Command(), "config", CLI.Config, "timezone", loc.String())

	if err := ctx.Run(cli.NewContext(store, utils.NewCalendar(loc))); err != nil {
		jerrors.Fatal(err)
	}
}

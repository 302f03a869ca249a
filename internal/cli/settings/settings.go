package settings

import (
	"fmt"
	"slices"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/constants"
	"github.com/julianstephens/journl/internal/models"
	"github.com/julianstephens/journl/internal/state"
	"github.com/julianstephens/journl/internal/utils"
	"github.com/julianstephens/journl/internal/validation"
)

type SettingsCmd struct {
	Show     SettingsShowCmd     `cmd:"" default:"1" help:"Show current settings."`
	Notify   SettingsNotifyCmd   `cmd:"" help:"Update notification preferences (stored only)."`
	Timezone SettingsTimezoneCmd `cmd:"" help:"Set the timezone used for calendar dates."`
	Window   SettingsWindowCmd   `cmd:"" help:"Set the consistency window in days."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	n := s.NotificationSettings
	ctx.Println("Current Settings:")
	ctx.Printf("  Timezone:              %s\n", s.Settings.Timezone)
	ctx.Printf("  Consistency Window:    %d days\n", s.Settings.ConsistencyWindowDays)
	ctx.Printf("  Theme:                 %s\n", s.Theme)
	ctx.Printf("  Focus Mode:            %v\n", s.FocusMode)
	ctx.Println("\nNotification Settings:")
	ctx.Printf("  Morning Digest:        %v (%s)\n", n.MorningDigest, n.MorningTime)
	ctx.Printf("  Evening Reflection:    %v (%s)\n", n.EveningReflection, n.EveningTime)
	ctx.Printf("  Bundle Notifications:  %v\n", n.BundleNotifications)
	ctx.Printf("  Nudge When At Risk:    %v\n", n.NudgeWhenAtRisk)
	return nil
}

type SettingsNotifyCmd struct {
	MorningDigest     *bool   `help:"Enable the morning digest."`
	MorningTime       *string `help:"Morning digest time (HH:MM)."`
	EveningReflection *bool   `help:"Enable the evening reflection."`
	EveningTime       *string `help:"Evening reflection time (HH:MM)."`
	Bundle            *bool   `help:"Bundle notifications together."`
	Nudge             *bool   `help:"Nudge when a streak is at risk."`
}

func (c *SettingsNotifyCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	n := s.NotificationSettings
	updated := false
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
			updated = true
		}
	}
	setTime := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
			updated = true
		}
	}
	set(&n.MorningDigest, c.MorningDigest)
	setTime(&n.MorningTime, c.MorningTime)
	set(&n.EveningReflection, c.EveningReflection)
	setTime(&n.EveningTime, c.EveningTime)
	set(&n.BundleNotifications, c.Bundle)
	set(&n.NudgeWhenAtRisk, c.Nudge)

	if !updated {
		ctx.Println("No changes specified. Use 'journl settings show' to view settings or flags to update them.")
		return nil
	}
	if err := validation.ValidateNotificationSettings(n).Err(); err != nil {
		return fmt.Errorf("invalid notification settings: %w", err)
	}

	if _, err := ctx.Dispatch(s, state.UpdateNotificationSettings{Settings: n}); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	return nil
}

type SettingsTimezoneCmd struct {
	Timezone string `arg:"" help:"IANA timezone name, or Local."`
}

func (c *SettingsTimezoneCmd) Run(ctx *cli.Context) error {
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone %q", c.Timezone)
	}
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	settings := s.Settings
	settings.Timezone = c.Timezone
	if _, err := ctx.Dispatch(s, state.UpdateSettings{Settings: settings}); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Printf("Timezone set to %s\n", c.Timezone)
	return nil
}

type SettingsWindowCmd struct {
	Days int `arg:"" help:"Days in the rolling consistency window."`
}

func (c *SettingsWindowCmd) Run(ctx *cli.Context) error {
	if c.Days < 1 || c.Days > constants.MaxConsistencyWindowDays {
		return fmt.Errorf("window must be between 1 and %d days, got %d", constants.MaxConsistencyWindowDays, c.Days)
	}
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	settings := s.Settings
	settings.ConsistencyWindowDays = c.Days
	if _, err := ctx.Dispatch(s, state.UpdateSettings{Settings: settings}); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Printf("Consistency window set to %d days\n", c.Days)
	return nil
}

type ThemeCmd struct {
	Theme string `arg:"" optional:"" help:"morning or candlelight. Shows the current theme when omitted."`
}

func (c *ThemeCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	if c.Theme == "" {
		ctx.Printf("Theme: %s\n", s.Theme)
		return nil
	}

	theme := models.Theme(c.Theme)
	if !theme.Valid() {
		return fmt.Errorf("unknown theme %q (expected morning or candlelight)", c.Theme)
	}
	if _, err := ctx.Dispatch(s, state.SetTheme{Theme: theme}); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	ctx.Printf("Theme set to %s\n", theme)
	return nil
}

type FocusCmd struct{}

func (c *FocusCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	next, err := ctx.Dispatch(s, state.ToggleFocusMode{})
	if err != nil {
		return fmt.Errorf("failed to toggle focus mode: %w", err)
	}
	if next.FocusMode {
		ctx.Println("Focus mode on: showing your first few habits only.")
	} else {
		ctx.Println("Focus mode off.")
	}
	return nil
}

type TagCmd struct {
	Add    TagAddCmd    `cmd:"" help:"Add a tag."`
	Remove TagRemoveCmd `cmd:"" help:"Remove a tag."`
	List   TagListCmd   `cmd:"" default:"1" help:"List tags."`
}

type TagAddCmd struct {
	Tag string `arg:""`
}

func (c *TagAddCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	if _, err := ctx.Dispatch(s, state.AddTag{Tag: c.Tag}); err != nil {
		return fmt.Errorf("failed to add tag: %w", err)
	}
	ctx.Printf("Added tag %s\n", c.Tag)
	return nil
}

type TagRemoveCmd struct {
	Tag string `arg:""`
}

func (c *TagRemoveCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	if !slices.Contains(s.Tags, c.Tag) {
		return fmt.Errorf("tag %q not found", c.Tag)
	}
	if _, err := ctx.Dispatch(s, state.RemoveTag{Tag: c.Tag}); err != nil {
		return fmt.Errorf("failed to remove tag: %w", err)
	}
	ctx.Printf("Removed tag %s\n", c.Tag)
	return nil
}

type TagListCmd struct{}

func (c *TagListCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	for _, t := range s.Tags {
		ctx.Println(t)
	}
	return nil
}

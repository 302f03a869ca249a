package journal

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/encouragement"
	jerrors "github.com/julianstephens/journl/internal/errors"
	"github.com/julianstephens/journl/internal/models"
	"github.com/julianstephens/journl/internal/state"
	"github.com/julianstephens/journl/internal/validation"
)

type JournalCmd struct {
	Add    JournalAddCmd    `cmd:"" help:"Write a journal entry."`
	List   JournalListCmd   `cmd:"" help:"List journal entries, newest first."`
	Edit   JournalEditCmd   `cmd:"" help:"Edit a journal entry."`
	Delete JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
	Prompt JournalPromptCmd `cmd:"" help:"Print a writing prompt."`
}

type JournalAddCmd struct {
	Content string   `arg:"" optional:"" help:"Entry text. Read from stdin when omitted or '-'."`
	Mood    int      `short:"m" help:"Mood from 1 (terrible) to 5 (great)." default:"3"`
	Tag     []string `short:"t" help:"Tag the entry (repeatable)."`
	Date    string   `help:"Date of the entry (YYYY-MM-DD, today or yesterday)." default:"today"`
}

func (c *JournalAddCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	content := c.Content
	if content == "" || content == "-" {
		data, err := io.ReadAll(ctx.In)
		if err != nil {
			return fmt.Errorf("failed to read entry: %w", err)
		}
		content = string(data)
	}
	content = strings.TrimSpace(content)

	entry := models.JournalEntry{Date: date, Mood: models.Mood(c.Mood), Content: content, Tags: normalizeTags(c.Tag)}
	if err := validation.ValidateJournalEntry(entry).Err(); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}

	s, err := ctx.Load()
	if err != nil {
		return err
	}

	actions := []state.Action{}
	for _, tag := range entry.Tags {
		if !slices.Contains(s.Tags, tag) {
			actions = append(actions, state.AddTag{Tag: tag})
		}
	}
	actions = append(actions, state.AddJournalEntry{Mood: entry.Mood, Content: entry.Content, Tags: entry.Tags, Date: date})

	next, err := ctx.Dispatch(s, actions...)
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}

	ctx.Printf("%s Saved entry for %s (%s)\n", entry.Mood.Emoji(), date, next.JournalEntries[0].ID)
	return nil
}

func normalizeTags(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		for _, part := range strings.Split(t, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" && !slices.Contains(out, part) {
				out = append(out, part)
			}
		}
	}
	return out
}

type JournalListCmd struct {
	Limit int    `short:"n" help:"Maximum entries to show." default:"10"`
	Tag   string `help:"Only entries with this tag."`
	Date  string `help:"Only entries written on this date."`
}

func (c *JournalListCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	date := ""
	if c.Date != "" {
		if date, err = ctx.ResolveDate(c.Date); err != nil {
			return err
		}
	}

	shown := 0
	for _, e := range s.JournalEntries {
		if c.Tag != "" && !slices.Contains(e.Tags, strings.ToLower(c.Tag)) {
			continue
		}
		if date != "" && e.Date != date {
			continue
		}
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
		shown++

		ctx.Printf("%s %s %s %s\n", cli.Title.Render(e.Date+" "+e.Time), e.Mood.Emoji(), e.Mood.Label(), cli.Muted.Render(e.ID))
		ctx.Println(e.Content)
		if len(e.Tags) > 0 {
			ctx.Println(cli.Muted.Render("#" + strings.Join(e.Tags, " #")))
		}
		ctx.Println()
	}

	if shown == 0 {
		ctx.Println("No journal entries found.")
	}
	return nil
}

type JournalEditCmd struct {
	ID      string   `arg:"" help:"Entry id."`
	Content *string  `help:"New text."`
	Mood    *int     `short:"m" help:"New mood (1-5)."`
	Tag     []string `short:"t" help:"Replace the tags (repeatable)."`
	NoTags  bool     `help:"Remove every tag."`
}

func (c *JournalEditCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	entry, ok := s.FindEntry(c.ID)
	if !ok {
		return fmt.Errorf("%w: %q", jerrors.ErrEntryNotFound, c.ID)
	}

	if c.Content != nil {
		entry.Content = strings.TrimSpace(*c.Content)
	}
	if c.Mood != nil {
		entry.Mood = models.Mood(*c.Mood)
	}
	if len(c.Tag) > 0 || c.NoTags {
		entry.Tags = normalizeTags(c.Tag)
	}
	if err := validation.ValidateJournalEntry(entry).Err(); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}

	if _, err := ctx.Dispatch(s, state.UpdateJournalEntry{Entry: entry}); err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	ctx.Printf("Updated entry %s\n", entry.ID)
	return nil
}

type JournalDeleteCmd struct {
	ID string `arg:"" help:"Entry id."`
}

func (c *JournalDeleteCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}
	if _, ok := s.FindEntry(c.ID); !ok {
		return fmt.Errorf("%w: %q", jerrors.ErrEntryNotFound, c.ID)
	}

	if _, err := ctx.Dispatch(s, state.DeleteJournalEntry{ID: c.ID}); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	ctx.Printf("Deleted entry %s\n", c.ID)
	return nil
}

type JournalPromptCmd struct{}

func (c *JournalPromptCmd) Run(ctx *cli.Context) error {
	ctx.Println(ctx.Picker.Pick(encouragement.JournalPrompts))
	return nil
}

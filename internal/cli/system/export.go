package system

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/constants"
	"github.com/julianstephens/journl/internal/storage"
)

type ExportCmd struct {
	Format string `help:"Output format." enum:"json,yaml" default:"json"`
	Output string `short:"o" help:"Write to this file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	encoded, err := storage.Encode(s)
	if err != nil {
		return err
	}

	// Decode each collection generically so both encoders share key names.
	doc := make(map[string]any, len(encoded)+2)
	for key, data := range encoded {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("failed to prepare %s for export: %w", key, err)
		}
		doc[key] = v
	}
	doc["summary"] = ctx.Engine.Summary(s.Snapshot(), s.Settings.ConsistencyWindowDays)
	doc["version"] = constants.Version

	out := ctx.Out
	if c.Output != "" {
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := write(out, c.Format, doc); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	if c.Output != "" {
		fmt.Fprintf(os.Stderr, "Exported to %s\n", c.Output)
	}
	return nil
}

func write(w io.Writer, format string, doc map[string]any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

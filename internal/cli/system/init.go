package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/state"
	"github.com/julianstephens/journl/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Delete the existing store before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()

	if c.Force {
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing store: %w", err)
			}
			ctx.Printf("Deleted existing store at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing store: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	keys, err := ctx.Store.Keys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		if err := storage.SaveAll(ctx.Store, state.Default()); err != nil {
			return err
		}
	}

	ctx.Printf("Initialized journl storage at: %s\n", path)
	return nil
}

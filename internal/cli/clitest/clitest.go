// Package clitest builds command contexts backed by a throwaway store for
// command tests.
package clitest

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/state"
	"github.com/julianstephens/journl/internal/storage"
	"github.com/julianstephens/journl/internal/utils"
)

// Now is the fixed clock of every test context, a Wednesday.
var Now = time.Date(2024, 3, 13, 9, 30, 0, 0, time.UTC)

// New returns a context over an initialized SQLite store in a temp dir,
// writing output to the returned buffer. Messages are always the first
// of their list.
func New(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "journl.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := cli.NewContext(store, utils.Calendar{Location: time.UTC, Now: func() time.Time { return Now }})
	out := &bytes.Buffer{}
	ctx.Out = out
	ctx.In = strings.NewReader("")
	ctx.Picker.Intn = func(int) int { return 0 }
	return ctx, out
}

// State reads back what the commands persisted.
func State(t *testing.T, ctx *cli.Context) state.State {
	t.Helper()
	s, err := storage.LoadState(ctx.Store)
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}
	return s
}

package backups

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/julianstephens/journl/internal/backup"
	"github.com/julianstephens/journl/internal/cli"
	"github.com/julianstephens/journl/internal/cli/clitest"
	"github.com/julianstephens/journl/internal/state"
	"github.com/julianstephens/journl/internal/storage"
)

func addTag(t *testing.T, ctx *cli.Context, tag string) {
	t.Helper()
	s, err := ctx.Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.Dispatch(s, state.AddTag{Tag: tag}); err != nil {
		t.Fatal(err)
	}
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, out := clitest.New(t)

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: journl-") {
		t.Errorf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "1 total") {
		t.Errorf("expected one backup listed, got %q", out.String())
	}
}

func TestBackupRestore(t *testing.T) {
	ctx, out := clitest.New(t)
	addTag(t, ctx, "before")

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	list, err := mgr.ListBackups()
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one backup, got %v %v", list, err)
	}
	name := filepath.Base(list[0].Path)

	addTag(t, ctx, "after")

	out.Reset()
	if err := (&BackupRestoreCmd{BackupFile: name, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "restored successfully") {
		t.Errorf("unexpected output %q", out.String())
	}

	reopened := storage.NewSQLiteStore(ctx.Store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	s, err := storage.LoadState(reopened)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(s.Tags, "before") || slices.Contains(s.Tags, "after") {
		t.Errorf("expected the backed up tags, got %v", s.Tags)
	}

	list, err = mgr.ListBackups()
	if err != nil || len(list) != 2 {
		t.Errorf("expected a pre-restore backup, got %d backups (%v)", len(list), err)
	}
}

func TestBackupRestoreCancelled(t *testing.T) {
	ctx, out := clitest.New(t)
	addTag(t, ctx, "before")
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	list, err := backup.NewManager(ctx.Store.GetConfigPath()).ListBackups()
	if err != nil || len(list) == 0 {
		t.Fatalf("expected a backup, got %v", err)
	}
	addTag(t, ctx, "after")

	ctx.In = strings.NewReader("n\n")
	if err := (&BackupRestoreCmd{BackupFile: list[0].Path}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Restore cancelled.") {
		t.Errorf("unexpected output %q", out.String())
	}
	if tags := clitest.State(t, ctx).Tags; !slices.Contains(tags, "after") {
		t.Errorf("expected current data untouched, got %v", tags)
	}
}

func TestBackupRestoreMissing(t *testing.T) {
	ctx, _ := clitest.New(t)
	err := (&BackupRestoreCmd{BackupFile: "journl-19990101-0000.db", Yes: true}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "backup file not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

// Package backup snapshots the journl store into a rotating set of files
// next to it and restores from them.
package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/journl/internal/constants"
	"github.com/julianstephens/journl/internal/logger"
)

const timestampFormat = "20060102-1504"

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates, lists and restores backups of one store file. The store
// kind follows the file suffix: .json files are copied, anything else is
// treated as SQLite.
type Manager struct {
	storePath string
	backupDir string
	suffix    string
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewManager(storePath string) *Manager {
	suffix := constants.BackupFileSuffix
	if strings.EqualFold(filepath.Ext(storePath), ".json") {
		suffix = ".json"
	}
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), constants.BackupDirName),
		suffix:    suffix,
	}
}

func (m *Manager) BackupDir() string { return m.backupDir }

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Manager) isJSON() bool { return m.suffix == ".json" }

// CreateBackup snapshots the store and prunes backups beyond the retention limit.
func (m *Manager) CreateBackup() (string, error) {
	path, err := m.createBackup()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) createBackup() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}

	path, err := m.uniquePath()
	if err != nil {
		return "", err
	}

	if m.isJSON() {
		err = copyFile(m.storePath, path)
	} else {
		err = m.vacuumInto(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to backup store: %w", err)
	}

	logger.Info("Created backup", "path", path)
	return path, nil
}

// uniquePath returns journl-YYYYMMDD-HHMM<suffix>, adding -N when a backup
// already exists for that minute.
func (m *Manager) uniquePath() (string, error) {
	stamp := m.now().Format(timestampFormat)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+m.suffix)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		name := fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, counter, m.suffix)
		path = filepath.Join(m.backupDir, name)
	}
}

func (m *Manager) vacuumInto(dest string) error {
	db, err := sql.Open("sqlite", m.storePath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	if err := verifySQLite(db); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		logger.Debug("VACUUM INTO failed, copying file", "error", err)
		db.Close()
		return copyFile(m.storePath, dest)
	}
	return nil
}

// ListBackups returns the backups newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		stamp, seq := parseName(strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix))
		ts, err := time.ParseInLocation(timestampFormat, stamp, time.Local)
		if err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: ts.Add(time.Duration(seq) * time.Nanosecond),
			Size:      info.Size(),
		})
	}

	slices.SortFunc(backups, func(a, b Info) int { return b.Timestamp.Compare(a.Timestamp) })
	return backups, nil
}

// parseName splits "YYYYMMDD-HHMM[-N]" into its timestamp and counter.
func parseName(s string) (string, int) {
	if len(s) <= len(timestampFormat) {
		return s, 0
	}
	stamp, rest := s[:len(timestampFormat)], s[len(timestampFormat):]
	n, err := strconv.Atoi(strings.TrimPrefix(rest, "-"))
	if err != nil || !strings.HasPrefix(rest, "-") {
		return s, 0
	}
	return stamp, n
}

func (m *Manager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the store with backupPath. The current store is
// backed up first.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := m.verify(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.storePath); err == nil {
		current, err := m.createBackup()
		if err != nil {
			return fmt.Errorf("failed to backup current store before restore: %w", err)
		}
		logger.Info("Backed up current store before restore", "path", current)
	}

	tmp := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tmp); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.storePath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to restore store: %w", err)
	}
	logger.Info("Restored backup", "path", backupPath)
	return nil
}

func (m *Manager) verify(path string) error {
	if m.isJSON() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !json.Valid(data) {
			return fmt.Errorf("not a JSON document")
		}
		return nil
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()
	return verifySQLite(db)
}

func verifySQLite(db *sql.DB) error {
	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}

// Package logger is the process-wide structured logger. Records go to a
// rotating file under the config directory; debug mode mirrors them to
// stderr. Until Init runs every helper is a no-op.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/journl/internal/constants"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

var (
	Logger *log.Logger
	file   *lumberjack.Logger
)

type Config struct {
	ConfigDir string
	Debug     bool
	// Level overrides the threshold: debug, info, warn or error.
	Level string
}

func (c Config) level() (log.Level, error) {
	switch {
	case c.Level != "":
		return log.ParseLevel(c.Level)
	case c.Debug:
		return log.DebugLevel, nil
	}
	return log.WarnLevel, nil
}

// LogFilePath returns the log file location for a config directory.
func LogFilePath(configDir string) string {
	return filepath.Join(configDir, "logs", constants.AppName+".log")
}

func Init(cfg Config) error {
	level, err := cfg.level()
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	path := LogFilePath(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	var w io.Writer = file
	if cfg.Debug {
		w = io.MultiWriter(os.Stderr, file)
	}

	Logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          constants.AppName,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		ReportCaller:    cfg.Debug,
		// Skip logAt and the exported helper.
		CallerOffset: 2,
	})
	return nil
}

// Close releases the log file and turns the helpers back into no-ops.
func Close() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	Logger, file = nil, nil
	return err
}

func Debug(msg string, keyvals ...any) { logAt(log.DebugLevel, msg, keyvals) }

func Info(msg string, keyvals ...any) { logAt(log.InfoLevel, msg, keyvals) }

func Warn(msg string, keyvals ...any) { logAt(log.WarnLevel, msg, keyvals) }

func Error(msg string, keyvals ...any) { logAt(log.ErrorLevel, msg, keyvals) }

func logAt(level log.Level, msg string, keyvals []any) {
	if Logger == nil {
		return
	}
	Logger.Log(level, msg, keyvals...)
}

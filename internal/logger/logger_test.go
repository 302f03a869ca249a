package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLog(t *testing.T, configDir string) string {
	t.Helper()
	data, err := os.ReadFile(LogFilePath(configDir))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(data)
}

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(func() { Close() })

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("hidden debug message")
	Info("hidden info message")
	Warn("credit ledger warning", "kind", "skip")

	content := readLog(t, configDir)
	if !strings.Contains(content, "credit ledger warning") || !strings.Contains(content, "kind=skip") {
		t.Errorf("log file missing warning, got %q", content)
	}
	if strings.Contains(content, "hidden") {
		t.Errorf("message written below warn level: %q", content)
	}
}

func TestInitLevels(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		visible []string
		hidden  []string
	}{
		{"debug mode", Config{Debug: true}, []string{"debug msg", "info msg"}, nil},
		{"info override", Config{Level: "info"}, []string{"info msg", "error msg"}, []string{"debug msg"}},
		{"error override", Config{Level: "error"}, []string{"error msg"}, []string{"info msg", "debug msg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.ConfigDir = t.TempDir()
			if err := Init(tt.cfg); err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			defer Close()

			Debug("debug msg")
			Info("info msg")
			Error("error msg")

			content := readLog(t, tt.cfg.ConfigDir)
			for _, v := range tt.visible {
				if !strings.Contains(content, v) {
					t.Errorf("expected %q in %q", v, content)
				}
			}
			for _, h := range tt.hidden {
				if strings.Contains(content, h) {
					t.Errorf("did not expect %q in %q", h, content)
				}
			}
		})
	}
}

func TestInitInvalidLevel(t *testing.T) {
	if err := Init(Config{ConfigDir: t.TempDir(), Level: "loud"}); err == nil {
		Close()
		t.Fatal("expected an error for an unknown level")
	}
	if Logger != nil {
		t.Error("expected no logger after a failed Init")
	}
}

func TestHelpersWithoutInit(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatalf("Close() without Init = %v", err)
	}

	// Must not panic when the logger was never initialized
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}

func TestLogFilePath(t *testing.T) {
	got := LogFilePath("/tmp/journl")
	want := filepath.Join("/tmp/journl", "logs", "journl.log")
	if got != want {
		t.Errorf("LogFilePath() = %q, want %q", got, want)
	}
}

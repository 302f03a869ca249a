// Package errors holds the sentinel errors shared across journl and the
// helpers the CLI uses to report them.
package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/journl/internal/logger"
)

var (
	ErrNotInitialized = errors.New("storage not initialized")
	ErrHabitNotFound  = errors.New("habit not found")
	ErrEntryNotFound  = errors.New("journal entry not found")
	ErrInvalidDate    = errors.New("invalid date")
)

var hints = map[error]string{
	ErrNotInitialized: "run 'journl init' first",
	ErrHabitNotFound:  "see 'journl habit list' for names and ids",
	ErrEntryNotFound:  "see 'journl journal list' for entry ids",
}

// Format formats err with an "Error: " prefix and, for known sentinels, a hint.
func Format(err error) string {
	if err == nil {
		return ""
	}
	for sentinel, hint := range hints {
		if errors.Is(err, sentinel) {
			return fmt.Sprintf("Error: %v (%s)", err, hint)
		}
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats a message with an "Error: " prefix.
func Formatf(format string, args ...any) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs err, prints it to stderr, and exits with status 1.
// A nil error is ignored.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}

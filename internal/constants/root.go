package constants

const (
	AppName           = "journl"
	DefaultConfigPath = "~/.config/journl/journl.db"
	ConfigEnvVar      = "JOURNL_CONFIG"
	Version           = "v0.3.0"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "journl-"
	BackupFileSuffix = ".db"

	// Scoring constants
	DefaultConsistencyWindowDays = 30
	MaxConsistencyWindowDays     = 365
	StreakHorizonDays            = 365
	StreakThreshold              = 50
	ExcusedDayScore              = 50
	NoObligationScore            = 100

	// Monthly credit allotments
	SkipCreditAllotment      = 2
	SickCreditAllotment      = 2
	EmergencyCreditAllotment = 1

	// Focus mode shows at most this many of today's habits
	FocusModeLimit = 3

	// Mood bounds
	MinMood = 1
	MaxMood = 5
)

// DefaultTags are offered to a fresh journal.
var DefaultTags = []string{"grateful", "reflection", "personal", "work", "health"}

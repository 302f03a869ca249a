package constants

const (
	// Collection keys. Each logical collection is persisted independently.
	CollectionJournalEntries       = "journalEntries"
	CollectionHabits               = "habits"
	CollectionHabitLogs            = "habitLogs"
	CollectionDayStatuses          = "dayStatuses"
	CollectionCredits              = "credits"
	CollectionNotificationSettings = "notificationSettings"
	CollectionTags                 = "tags"
	CollectionUnlockedMilestones   = "unlockedMilestones"
	CollectionFocusMode            = "focusMode"
	CollectionTheme                = "theme"
	CollectionSettings             = "settings"

	// Default notification settings. These are stored, never delivered.
	DefaultMorningDigest       = true
	DefaultMorningTime         = "08:00"
	DefaultEveningReflection   = true
	DefaultEveningTime         = "21:00"
	DefaultBundleNotifications = true
	DefaultNudgeWhenAtRisk     = true

	DefaultTimezone = "Local" // Use system local timezone by default
	DefaultTheme    = "morning"
)

// Collections lists every persisted collection key in save order.
var Collections = []string{
	CollectionJournalEntries,
	CollectionHabits,
	CollectionHabitLogs,
	CollectionDayStatuses,
	CollectionCredits,
	CollectionNotificationSettings,
	CollectionTags,
	CollectionUnlockedMilestones,
	CollectionFocusMode,
	CollectionTheme,
	CollectionSettings,
}

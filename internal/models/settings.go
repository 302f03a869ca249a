package models

import "github.com/julianstephens/journl/internal/constants"

type Theme string

const (
	ThemeMorning     Theme = "morning"
	ThemeCandlelight Theme = "candlelight"
)

func (t Theme) Valid() bool {
	return t == ThemeMorning || t == ThemeCandlelight
}

// NotificationSettings are stored preferences only; nothing delivers them.
type NotificationSettings struct {
	MorningDigest       bool   `json:"morning_digest"`
	MorningTime         string `json:"morning_time"` // HH:MM format
	EveningReflection   bool   `json:"evening_reflection"`
	EveningTime         string `json:"evening_time"` // HH:MM format
	BundleNotifications bool   `json:"bundle_notifications"`
	NudgeWhenAtRisk     bool   `json:"nudge_when_at_risk"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		MorningDigest:       constants.DefaultMorningDigest,
		MorningTime:         constants.DefaultMorningTime,
		EveningReflection:   constants.DefaultEveningReflection,
		EveningTime:         constants.DefaultEveningTime,
		BundleNotifications: constants.DefaultBundleNotifications,
		NudgeWhenAtRisk:     constants.DefaultNudgeWhenAtRisk,
	}
}

// Settings represents application-wide settings
type Settings struct {
	Timezone              string `json:"timezone"`                // IANA timezone name or "Local"
	ConsistencyWindowDays int    `json:"consistency_window_days"` // rolling window for the consistency score
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.ConsistencyWindowDays <= 0 {
		settings.ConsistencyWindowDays = constants.DefaultConsistencyWindowDays
	}
}

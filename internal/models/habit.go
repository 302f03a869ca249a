package models

import (
	"time"

	"github.com/julianstephens/journl/internal/constants"
)

// Weekday is a three-letter day label as stored in a habit's schedule.
type Weekday string

const (
	Sunday    Weekday = "Sun"
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
)

// Weekdays is indexed by time.Weekday (Sunday = 0).
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayFromTime maps a time.Weekday onto its schedule label.
func WeekdayFromTime(wd time.Weekday) Weekday {
	return Weekdays[int(wd)%7]
}

// Valid reports whether w is one of the seven labels.
func (w Weekday) Valid() bool {
	for _, d := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

type HabitCategory string

const (
	CategoryHealth       HabitCategory = "health"
	CategoryMind         HabitCategory = "mind"
	CategoryProductivity HabitCategory = "productivity"
	CategoryCustom       HabitCategory = "custom"
)

// Categories lists the habit categories in display order.
var Categories = []HabitCategory{CategoryHealth, CategoryMind, CategoryProductivity, CategoryCustom}

func (c HabitCategory) Valid() bool {
	switch c {
	case CategoryHealth, CategoryMind, CategoryProductivity, CategoryCustom:
		return true
	}
	return false
}

// Habit is a recurring practice with a weekly schedule and a numeric target.
type Habit struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Emoji        string        `json:"emoji,omitempty"`
	Category     HabitCategory `json:"category"`
	Frequency    []Weekday     `json:"frequency"`
	Target       int           `json:"target"`
	Unit         string        `json:"unit"`
	ReminderTime string        `json:"reminder_time,omitempty"` // HH:MM format
	CreatedAt    time.Time     `json:"created_at"`
}

// CreatedDate is the date portion of CreatedAt in the offset it was recorded with.
func (h Habit) CreatedDate() string {
	return h.CreatedAt.Format(constants.DateFormat)
}

// ScheduledOnWeekday reports whether wd is part of the habit's schedule.
func (h Habit) ScheduledOnWeekday(wd Weekday) bool {
	for _, d := range h.Frequency {
		if d == wd {
			return true
		}
	}
	return false
}

// HabitLog records progress toward a habit's target on one date.
type HabitLog struct {
	ID        string `json:"id"`
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"` // YYYY-MM-DD format
	Completed bool   `json:"completed"`
	Progress  int    `json:"progress"`
}

package models

import "time"

// Mood is a 1 (terrible) to 5 (great) rating.
type Mood int

var moodLabels = map[Mood]string{
	1: "Terrible",
	2: "Bad",
	3: "Okay",
	4: "Good",
	5: "Great",
}

var moodEmojis = map[Mood]string{
	1: "😞",
	2: "😕",
	3: "😐",
	4: "🙂",
	5: "😊",
}

func (m Mood) Valid() bool {
	_, ok := moodLabels[m]
	return ok
}

func (m Mood) Label() string {
	return moodLabels[m]
}

func (m Mood) Emoji() string {
	return moodEmojis[m]
}

// JournalEntry is a single mood + text entry.
type JournalEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Time      string    `json:"time"` // HH:MM format
	CreatedAt time.Time `json:"created_at"`
	Mood      Mood      `json:"mood"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
}

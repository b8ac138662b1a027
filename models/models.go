package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Moods an entry can be tagged with.
const (
	MoodGreat = "great"
	MoodGood  = "good"
	MoodOkay  = "okay"
	MoodBad   = "bad"
	MoodAwful = "awful"
)

var moods = map[string]bool{
	MoodGreat: true,
	MoodGood:  true,
	MoodOkay:  true,
	MoodBad:   true,
	MoodAwful: true,
}

func ValidMood(mood string) bool {
	return moods[mood]
}

type MicroGoal struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Entry struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Mood       string      `json:"mood,omitempty"`
	Activities []string    `json:"activities,omitempty"`
	Images     []string    `json:"images,omitempty"`
	MicroGoals []MicroGoal `json:"micro_goals,omitempty"`
	Quote      string      `json:"quote,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// GratitudeEntry is one day's gratitude list, kept separate from the journal.
type GratitudeEntry struct {
	ID    string   `json:"id"`
	Date  string   `json:"date"` // YYYY-MM-DD
	Items []string `json:"items"`
}

// Snapshot is the full per-user persisted state. Every save overwrites the
// whole snapshot; there is no partial-write reconciliation.
type Snapshot struct {
	Entries    []Entry          `json:"entries"`
	PIN        string           `json:"pin"`
	PrivateIDs []string         `json:"private_ids"`
	Gratitude  []GratitudeEntry `json:"gratitude"`
}

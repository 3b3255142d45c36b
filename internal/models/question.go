package models

import "time"

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// DefaultCategory is the terminal fallback of the category/topic resolution
// chain used when neither the question nor the session carries one.
const DefaultCategory = "general"

// Question is one prompt inside a session. The question bank populates
// PromptText/ReferenceAnswer at session creation; this service only mutates
// the last-attempt fields below on each submission.
type Question struct {
	ID              string `bson:"_id,omitempty" json:"id"`
	SessionID       string `bson:"session_id" json:"sessionId"`
	PromptText      string `bson:"prompt_text" json:"promptText"`
	ReferenceAnswer string `bson:"reference_answer" json:"referenceAnswer"`
	Note            string `bson:"note,omitempty" json:"note,omitempty"`
	IsPinned        bool   `bson:"is_pinned" json:"isPinned"`
	Difficulty      string `bson:"difficulty" json:"difficulty"`
	Category        string `bson:"category" json:"category"`

	// Denormalized last-attempt state.
	Attempts                   int        `bson:"attempts" json:"attempts"`
	LastAttemptedAt            *time.Time `bson:"last_attempted_at,omitempty" json:"lastAttemptedAt,omitempty"`
	LastUserAnswer             string     `bson:"last_user_answer" json:"lastUserAnswer"`
	LastIsCorrect              bool       `bson:"last_is_correct" json:"lastIsCorrect"`
	CumulativeTimeSpentSeconds int        `bson:"cumulative_time_spent_seconds" json:"cumulativeTimeSpentSeconds"`
	Confidence                 int        `bson:"confidence" json:"confidence"`
}

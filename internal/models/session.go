package models

import "time"

const (
	SessionInProgress = "in-progress"
	SessionCompleted  = "completed"
	SessionPaused     = "paused"
)

// Session is a fixed ordered set of questions a user works through. The
// question list is set at creation and never changes; the counter fields are
// maintained by the submission path.
type Session struct {
	ID            string   `bson:"_id,omitempty" json:"id"`
	UserID        string   `bson:"user_id" json:"userId"`
	Role          string   `bson:"role" json:"role"`
	Experience    string   `bson:"experience" json:"experience"`
	TopicsToFocus string   `bson:"topics_to_focus" json:"topicsToFocus"`
	Description   string   `bson:"description,omitempty" json:"description,omitempty"`
	QuestionIDs   []string `bson:"question_ids" json:"questionIds"`
	Difficulty    string   `bson:"difficulty" json:"difficulty"`
	Category      string   `bson:"category" json:"category"`

	Status                     string     `bson:"status" json:"status"`
	QuestionsAnswered          int        `bson:"questions_answered" json:"questionsAnswered"`
	QuestionsCorrect           int        `bson:"questions_correct" json:"questionsCorrect"`
	Score                      int        `bson:"score" json:"score"` // percentage, 0-100
	CumulativeTimeSpentSeconds int        `bson:"cumulative_time_spent_seconds" json:"cumulativeTimeSpentSeconds"`
	StartedAt                  time.Time  `bson:"started_at" json:"startedAt"`
	CompletedAt                *time.Time `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
}

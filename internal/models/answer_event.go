package models

import "time"

// AnswerEvent is the immutable record of one answer submission. Events are
// only ever inserted; the denormalized counters on Question, Session and User
// are derived from them at submission time.
type AnswerEvent struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	UserID           string    `bson:"user_id" json:"userId"`
	SessionID        string    `bson:"session_id" json:"sessionId"`
	QuestionID       string    `bson:"question_id" json:"questionId"`
	UserAnswer       string    `bson:"user_answer" json:"userAnswer"`
	IsCorrect        bool      `bson:"is_correct" json:"isCorrect"`
	CorrectAnswer    string    `bson:"correct_answer" json:"correctAnswer"`
	TimeSpentSeconds int       `bson:"time_spent_seconds" json:"timeSpentSeconds"`
	Confidence       int       `bson:"confidence" json:"confidence"` // 1-5 scale
	Difficulty       string    `bson:"difficulty" json:"difficulty"` // easy|medium|hard
	Category         string    `bson:"category" json:"category"`
	Topic            string    `bson:"topic" json:"topic"`
	AnsweredAt       time.Time `bson:"answered_at" json:"answeredAt"`
}

package models

import "time"

// SubmitResult is the submission response: the recorded event plus the
// best-effort snapshot of the updated denormalized counters. SessionScore and
// UserStats stay at their zero values when the session or user record is
// missing.
type SubmitResult struct {
	AnswerEvent  AnswerEvent `json:"answerEvent"`
	IsCorrect    bool        `json:"isCorrect"`
	SessionScore int         `json:"sessionScore"`
	UserStats    UserStats   `json:"userStats"`
}

type UserStats struct {
	TotalAnswered int `json:"totalAnswered"`
	TotalCorrect  int `json:"totalCorrect"`
	AverageScore  int `json:"averageScore"`
	StreakDays    int `json:"streakDays"`
}

// CategoryStats is one accuracy bucket of the analytics rollup.
type CategoryStats struct {
	Total    int `json:"total"`
	Correct  int `json:"correct"`
	Accuracy int `json:"accuracy"`
}

// DailyStats is one calendar-day bucket of the analytics rollup.
type DailyStats struct {
	Date     string `json:"date"` // YYYY-MM-DD, local day of answeredAt
	Total    int    `json:"total"`
	Correct  int    `json:"correct"`
	Accuracy int    `json:"accuracy"`
}

// AnalyticsUserStats are the user's lifetime totals, reported unchanged
// alongside the windowed rollups.
type AnalyticsUserStats struct {
	TotalSessions          int    `json:"totalSessions"`
	TotalQuestionsAnswered int    `json:"totalQuestionsAnswered"`
	TotalQuestionsCorrect  int    `json:"totalQuestionsCorrect"`
	AverageScore           int    `json:"averageScore"`
	StreakDays             int    `json:"streakDays"`
	ExperienceLevel        string `json:"experienceLevel"`
}

// Analytics is the multi-dimensional rollup over a lookback window.
type Analytics struct {
	Timeframe              string                   `json:"timeframe"`
	TotalQuestions         int                      `json:"totalQuestions"`
	CorrectAnswers         int                      `json:"correctAnswers"`
	Accuracy               int                      `json:"accuracy"`
	TotalTimeSpent         int                      `json:"totalTimeSpent"`
	AverageTimePerQuestion int                      `json:"averageTimePerQuestion"`
	CategoryStats          map[string]CategoryStats `json:"categoryStats"`
	DailyProgress          []DailyStats             `json:"dailyProgress"`
	UserStats              AnalyticsUserStats       `json:"userStats"`
}

// QuestionProgress is the per-question row of a session progress report.
// Unanswered questions keep zero values and a nil confidence/answeredAt.
type QuestionProgress struct {
	QuestionID       string     `json:"questionId"`
	PromptText       string     `json:"promptText"`
	IsAnswered       bool       `json:"isAnswered"`
	IsCorrect        bool       `json:"isCorrect"`
	TimeSpentSeconds int        `json:"timeSpentSeconds"`
	Confidence       *int       `json:"confidence"`
	AnsweredAt       *time.Time `json:"answeredAt"`
}

// SessionProgress merges a session's question list with the user's answer
// events for that session.
type SessionProgress struct {
	SessionID         string             `json:"sessionId"`
	Status            string             `json:"status"`
	TotalQuestions    int                `json:"totalQuestions"`
	AnsweredQuestions int                `json:"answeredQuestions"`
	CorrectAnswers    int                `json:"correctAnswers"`
	Accuracy          int                `json:"accuracy"`
	TotalTimeSpent    int                `json:"totalTimeSpent"`
	Score             int                `json:"score"`
	StartedAt         time.Time          `json:"startedAt"`
	CompletedAt       *time.Time         `json:"completedAt,omitempty"`
	QuestionProgress  []QuestionProgress `json:"questionProgress"`
}

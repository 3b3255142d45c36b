package models

import "time"

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// ValidExperienceLevel reports whether level is one of the allowed values.
func ValidExperienceLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// User owns sessions and accumulates lifetime totals across all of them.
type User struct {
	ID              string   `bson:"_id,omitempty" json:"id"`
	Name            string   `bson:"name" json:"name"`
	Email           string   `bson:"email" json:"email"`
	Password        string   `bson:"password" json:"-"`
	ProfileImageURL string   `bson:"profile_image_url,omitempty" json:"profileImageUrl,omitempty"`
	PreferredTopics []string `bson:"preferred_topics,omitempty" json:"preferredTopics,omitempty"`

	TotalSessions          int       `bson:"total_sessions" json:"totalSessions"`
	TotalQuestionsAnswered int       `bson:"total_questions_answered" json:"totalQuestionsAnswered"`
	TotalQuestionsCorrect  int       `bson:"total_questions_correct" json:"totalQuestionsCorrect"`
	AverageScore           int       `bson:"average_score" json:"averageScore"`
	LastActiveDate         time.Time `bson:"last_active_date" json:"lastActiveDate"`
	StreakDays             int       `bson:"streak_days" json:"streakDays"`
	ExperienceLevel        string    `bson:"experience_level" json:"experienceLevel"`
}

// UserView is the outward projection of a User with credentials stripped.
type UserView struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	ProfileImageURL        string    `json:"profileImageUrl,omitempty"`
	PreferredTopics        []string  `json:"preferredTopics,omitempty"`
	TotalSessions          int       `json:"totalSessions"`
	TotalQuestionsAnswered int       `json:"totalQuestionsAnswered"`
	TotalQuestionsCorrect  int       `json:"totalQuestionsCorrect"`
	AverageScore           int       `json:"averageScore"`
	LastActiveDate         time.Time `json:"lastActiveDate"`
	StreakDays             int       `json:"streakDays"`
	ExperienceLevel        string    `json:"experienceLevel"`
}

// View strips the credential fields from a User.
func (u *User) View() UserView {
	return UserView{
		ID:                     u.ID,
		Name:                   u.Name,
		Email:                  u.Email,
		ProfileImageURL:        u.ProfileImageURL,
		PreferredTopics:        u.PreferredTopics,
		TotalSessions:          u.TotalSessions,
		TotalQuestionsAnswered: u.TotalQuestionsAnswered,
		TotalQuestionsCorrect:  u.TotalQuestionsCorrect,
		AverageScore:           u.AverageScore,
		LastActiveDate:         u.LastActiveDate,
		StreakDays:             u.StreakDays,
		ExperienceLevel:        u.ExperienceLevel,
	}
}

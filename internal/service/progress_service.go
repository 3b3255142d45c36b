package service

import (
	"context"
	"math"
	"time"

	"progress-service/internal/cache"
	"progress-service/internal/evaluation"
	progressevent "progress-service/internal/event"
	"progress-service/internal/models"

	"github.com/google/uuid"
)

// Publisher is the optional event sink for session lifecycle events.
type Publisher interface {
	Publish(eventType string, payload interface{}) error
}

// ProgressService coordinates answer submissions and session progress
// reports. One submission writes the immutable answer event and then
// maintains the denormalized counters on the question, session and user
// records.
//
// Counter updates are independent read-modify-write cycles with no
// per-aggregate locking, so concurrent submissions against the same session
// or user can lose increments. Callers needing stronger guarantees must
// serialize submissions per user.
type ProgressService struct {
	Events    AnswerEventStore
	Questions QuestionStore
	Sessions  SessionStore
	Users     UserStore
	Cache     *cache.AnalyticsCache
	Publisher Publisher

	now   func() time.Time
	newID func() string
}

func NewProgressService(events AnswerEventStore, questions QuestionStore, sessions SessionStore, users UserStore, analyticsCache *cache.AnalyticsCache) *ProgressService {
	return &ProgressService{
		Events:    events,
		Questions: questions,
		Sessions:  sessions,
		Users:     users,
		Cache:     analyticsCache,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

type SubmitAnswerInput struct {
	SessionID        string `json:"sessionId"`
	QuestionID       string `json:"questionId"`
	UserAnswer       string `json:"userAnswer"`
	TimeSpentSeconds int    `json:"timeSpentSeconds"`
	Confidence       int    `json:"confidence"`
	Difficulty       string `json:"difficulty"`
}

// SubmitAnswer records one answer event and updates the question, session
// and user counters. A missing session or user is tolerated: the event is
// still recorded and the corresponding response fields stay at zero.
func (s *ProgressService) SubmitAnswer(ctx context.Context, userID string, in SubmitAnswerInput) (*models.SubmitResult, error) {
	if in.SessionID == "" || in.QuestionID == "" || in.UserAnswer == "" {
		return nil, &ValidationError{Message: "sessionId, questionId and userAnswer are required"}
	}
	if in.Confidence != 0 && (in.Confidence < 1 || in.Confidence > 5) {
		return nil, &ValidationError{Message: "confidence must be between 1 and 5"}
	}
	if in.Difficulty != "" && in.Difficulty != models.DifficultyEasy && in.Difficulty != models.DifficultyMedium && in.Difficulty != models.DifficultyHard {
		return nil, &ValidationError{Message: "difficulty must be easy, medium or hard"}
	}

	question, err := s.Questions.FindByID(ctx, in.QuestionID)
	if err != nil {
		return nil, &StoreError{Op: "find question", Err: err}
	}
	if question == nil {
		return nil, &NotFoundError{Entity: "question", ID: in.QuestionID}
	}

	session, err := s.Sessions.FindByID(ctx, in.SessionID)
	if err != nil {
		return nil, &StoreError{Op: "find session", Err: err}
	}

	now := s.now()
	isCorrect := evaluation.Evaluate(in.UserAnswer, question.ReferenceAnswer)

	event := models.AnswerEvent{
		ID:               s.newID(),
		UserID:           userID,
		SessionID:        in.SessionID,
		QuestionID:       in.QuestionID,
		UserAnswer:       in.UserAnswer,
		IsCorrect:        isCorrect,
		CorrectAnswer:    question.ReferenceAnswer,
		TimeSpentSeconds: max(in.TimeSpentSeconds, 0),
		Confidence:       defaultConfidence(in.Confidence),
		Difficulty:       defaultDifficulty(in.Difficulty),
		Category:         resolveCategory(question),
		Topic:            resolveTopic(session),
		AnsweredAt:       now,
	}
	if err := s.Events.Create(ctx, &event); err != nil {
		return nil, &StoreError{Op: "create answer event", Err: err}
	}

	// The event is durably recorded from here on. All three counter updates
	// are attempted even if one of them fails.
	var downstreamErr error
	fail := func(op string, err error) {
		if downstreamErr == nil {
			downstreamErr = &StoreError{Op: op, Err: err}
		}
	}

	question.Attempts++
	question.LastAttemptedAt = &now
	question.LastUserAnswer = event.UserAnswer
	question.LastIsCorrect = isCorrect
	question.CumulativeTimeSpentSeconds += event.TimeSpentSeconds
	question.Confidence = event.Confidence
	if err := s.Questions.Save(ctx, question); err != nil {
		fail("save question", err)
	}

	result := models.SubmitResult{
		AnswerEvent: event,
		IsCorrect:   isCorrect,
	}

	if session != nil {
		completed := s.applySessionCounters(session, isCorrect, event.TimeSpentSeconds, now)
		if err := s.Sessions.Save(ctx, session); err != nil {
			fail("save session", err)
		}
		result.SessionScore = session.Score
		if completed && s.Publisher != nil {
			s.Publisher.Publish(progressevent.SessionCompleted, map[string]interface{}{
				"session_id": session.ID,
				"user_id":    userID,
				"score":      session.Score,
				"timestamp":  now,
			})
		}
	}

	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		fail("find user", err)
	}
	if user != nil {
		s.applyUserCounters(user, isCorrect, now)
		if err := s.Users.Save(ctx, user); err != nil {
			fail("save user", err)
		}
		result.UserStats = models.UserStats{
			TotalAnswered: user.TotalQuestionsAnswered,
			TotalCorrect:  user.TotalQuestionsCorrect,
			AverageScore:  user.AverageScore,
			StreakDays:    user.StreakDays,
		}
	}

	if downstreamErr != nil {
		return nil, downstreamErr
	}

	s.Cache.InvalidateUser(ctx, userID)

	return &result, nil
}

// applySessionCounters advances the session's denormalized counters and
// reports whether this submission completed the session. Once a session is
// completed it stays completed and its counters stop moving, so
// questionsAnswered never exceeds the question count.
func (s *ProgressService) applySessionCounters(session *models.Session, isCorrect bool, timeSpent int, now time.Time) bool {
	if session.Status == models.SessionCompleted {
		return false
	}
	session.QuestionsAnswered++
	if isCorrect {
		session.QuestionsCorrect++
	}
	session.Score = percent(session.QuestionsCorrect, session.QuestionsAnswered)
	session.CumulativeTimeSpentSeconds += timeSpent
	if session.QuestionsAnswered >= len(session.QuestionIDs) {
		session.Status = models.SessionCompleted
		session.CompletedAt = &now
		return true
	}
	return false
}

// applyUserCounters advances the lifetime totals and the activity streak.
// The streak increments whenever the submission lands on a different
// calendar day than the previous activity; it deliberately does not reset on
// gaps, so it counts distinct active days rather than consecutive ones.
func (s *ProgressService) applyUserCounters(user *models.User, isCorrect bool, now time.Time) {
	user.TotalQuestionsAnswered++
	if isCorrect {
		user.TotalQuestionsCorrect++
	}
	user.AverageScore = percent(user.TotalQuestionsCorrect, user.TotalQuestionsAnswered)
	if !sameCalendarDay(now, user.LastActiveDate) {
		user.StreakDays++
	}
	user.LastActiveDate = now
}

// GetSessionProgress merges the session's fixed question list with the
// user's answer events for it. When a question has been attempted more than
// once, the latest attempt by answeredAt wins.
func (s *ProgressService) GetSessionProgress(ctx context.Context, userID, sessionID string) (*models.SessionProgress, error) {
	if sessionID == "" {
		return nil, &ValidationError{Message: "sessionId is required"}
	}

	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, &StoreError{Op: "find session", Err: err}
	}
	if session == nil {
		return nil, &NotFoundError{Entity: "session", ID: sessionID}
	}
	if session.UserID != userID {
		return nil, &AuthorizationError{Message: "session belongs to another user"}
	}

	events, err := s.Events.FindByUserAndSession(ctx, userID, sessionID)
	if err != nil {
		return nil, &StoreError{Op: "find answer events", Err: err}
	}
	questions, err := s.Questions.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, &StoreError{Op: "find questions", Err: err}
	}

	prompts := make(map[string]string, len(questions))
	for _, q := range questions {
		prompts[q.ID] = q.PromptText
	}

	latest := make(map[string]models.AnswerEvent)
	correct := 0
	totalTime := 0
	for _, e := range events {
		totalTime += e.TimeSpentSeconds
		if e.IsCorrect {
			correct++
		}
		if prev, ok := latest[e.QuestionID]; !ok || e.AnsweredAt.After(prev.AnsweredAt) {
			latest[e.QuestionID] = e
		}
	}

	rows := make([]models.QuestionProgress, 0, len(session.QuestionIDs))
	for _, questionID := range session.QuestionIDs {
		row := models.QuestionProgress{
			QuestionID: questionID,
			PromptText: prompts[questionID],
		}
		if e, ok := latest[questionID]; ok {
			confidence := e.Confidence
			answeredAt := e.AnsweredAt
			row.IsAnswered = true
			row.IsCorrect = e.IsCorrect
			row.TimeSpentSeconds = e.TimeSpentSeconds
			row.Confidence = &confidence
			row.AnsweredAt = &answeredAt
		}
		rows = append(rows, row)
	}

	return &models.SessionProgress{
		SessionID:         sessionID,
		Status:            session.Status,
		TotalQuestions:    len(session.QuestionIDs),
		AnsweredQuestions: len(events),
		CorrectAnswers:    correct,
		Accuracy:          percent(correct, len(events)),
		TotalTimeSpent:    totalTime,
		Score:             session.Score,
		StartedAt:         session.StartedAt,
		CompletedAt:       session.CompletedAt,
		QuestionProgress:  rows,
	}, nil
}

// resolveCategory is the explicit category fallback: the question's own
// category, then the default.
func resolveCategory(question *models.Question) string {
	if question.Category != "" {
		return question.Category
	}
	return models.DefaultCategory
}

// resolveTopic is the explicit topic fallback: the owning session's focus
// topics, then the default.
func resolveTopic(session *models.Session) string {
	if session != nil && session.TopicsToFocus != "" {
		return session.TopicsToFocus
	}
	return models.DefaultCategory
}

func defaultConfidence(confidence int) int {
	if confidence == 0 {
		return 3
	}
	return confidence
}

func defaultDifficulty(difficulty string) string {
	if difficulty == "" {
		return models.DifficultyMedium
	}
	return difficulty
}

// percent returns round(100*part/total), or 0 when total is 0.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

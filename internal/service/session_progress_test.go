package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"progress-service/internal/models"
)

func TestGetSessionProgressNotFound(t *testing.T) {
	svc, _, _, _, _ := newFixture(testNow)

	_, err := svc.GetSessionProgress(context.Background(), "u1", "missing")
	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGetSessionProgressWrongOwner(t *testing.T) {
	svc, _, _, sessions, _ := newFixture(testNow)
	seedSession(sessions, "s1", "owner", "q1")

	_, err := svc.GetSessionProgress(context.Background(), "intruder", "s1")
	var authErr *AuthorizationError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}

func TestGetSessionProgressUnansweredDefaults(t *testing.T) {
	svc, _, questions, sessions, _ := newFixture(testNow)
	seedQuestion(questions, "q1", "s1", "stack")
	seedQuestion(questions, "q2", "s1", "queue")
	seedSession(sessions, "s1", "u1", "q1", "q2")

	progress, err := svc.GetSessionProgress(context.Background(), "u1", "s1")
	if err != nil {
		t.Fatalf("GetSessionProgress failed: %v", err)
	}

	if progress.TotalQuestions != 2 || progress.AnsweredQuestions != 0 {
		t.Errorf("expected 2 total / 0 answered, got %d/%d", progress.TotalQuestions, progress.AnsweredQuestions)
	}
	if progress.Accuracy != 0 {
		t.Errorf("expected accuracy 0 with no answers, got %d", progress.Accuracy)
	}
	if len(progress.QuestionProgress) != 2 {
		t.Fatalf("expected a row per question, got %d", len(progress.QuestionProgress))
	}
	row := progress.QuestionProgress[0]
	if row.IsAnswered || row.IsCorrect || row.TimeSpentSeconds != 0 {
		t.Errorf("unanswered row must default to false/0: %+v", row)
	}
	if row.Confidence != nil || row.AnsweredAt != nil {
		t.Errorf("unanswered row must have nil confidence and answeredAt: %+v", row)
	}
	if row.PromptText != "Explain stack" {
		t.Errorf("expected prompt text from question, got %q", row.PromptText)
	}
}

func TestGetSessionProgressPicksLatestAttempt(t *testing.T) {
	svc, events, questions, sessions, _ := newFixture(testNow)
	seedQuestion(questions, "q1", "s1", "stack")
	seedQuestion(questions, "q2", "s1", "queue")
	seedSession(sessions, "s1", "u1", "q1", "q2")

	first := testNow.Add(-2 * time.Hour)
	second := testNow.Add(-time.Hour)
	events.events = []models.AnswerEvent{
		{ID: "e1", UserID: "u1", SessionID: "s1", QuestionID: "q1", IsCorrect: false, TimeSpentSeconds: 40, Confidence: 2, AnsweredAt: first},
		{ID: "e2", UserID: "u1", SessionID: "s1", QuestionID: "q1", IsCorrect: true, TimeSpentSeconds: 25, Confidence: 4, AnsweredAt: second},
	}

	progress, err := svc.GetSessionProgress(context.Background(), "u1", "s1")
	if err != nil {
		t.Fatalf("GetSessionProgress failed: %v", err)
	}

	// Aggregates cover every event, including the superseded first attempt.
	if progress.AnsweredQuestions != 2 || progress.CorrectAnswers != 1 {
		t.Errorf("expected 2 answered / 1 correct across events, got %d/%d",
			progress.AnsweredQuestions, progress.CorrectAnswers)
	}
	if progress.TotalTimeSpent != 65 {
		t.Errorf("expected total time 65, got %d", progress.TotalTimeSpent)
	}

	row := progress.QuestionProgress[0]
	if row.QuestionID != "q1" {
		t.Fatalf("rows must follow the session question order, got %q first", row.QuestionID)
	}
	if !row.IsAnswered || !row.IsCorrect {
		t.Errorf("latest attempt (correct) must win: %+v", row)
	}
	if row.TimeSpentSeconds != 25 || row.Confidence == nil || *row.Confidence != 4 {
		t.Errorf("latest attempt fields must be reported: %+v", row)
	}
	if row.AnsweredAt == nil || !row.AnsweredAt.Equal(second) {
		t.Errorf("expected answeredAt of latest attempt, got %v", row.AnsweredAt)
	}

	if progress.QuestionProgress[1].IsAnswered {
		t.Error("q2 has no events and must report unanswered")
	}
}

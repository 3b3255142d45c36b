package service

import (
	"context"
	"testing"
	"time"

	"progress-service/internal/models"
)

func newAnalyticsFixture(at time.Time) (*AnalyticsService, *fakeEventStore, *fakeUserStore) {
	events := &fakeEventStore{}
	users := &fakeUserStore{users: map[string]*models.User{}}
	svc := NewAnalyticsService(events, users, nil)
	svc.now = func() time.Time { return at }
	return svc, events, users
}

func addEvent(events *fakeEventStore, userID, category string, correct bool, timeSpent int, answeredAt time.Time) {
	events.events = append(events.events, models.AnswerEvent{
		ID:               "e",
		UserID:           userID,
		SessionID:        "s1",
		QuestionID:       "q",
		IsCorrect:        correct,
		TimeSpentSeconds: timeSpent,
		Category:         category,
		AnsweredAt:       answeredAt,
	})
}

func TestGetAnalyticsRollups(t *testing.T) {
	svc, events, users := newAnalyticsFixture(testNow)

	addEvent(events, "u1", "algorithms", true, 30, testNow.Add(-48*time.Hour))
	addEvent(events, "u1", "algorithms", false, 50, testNow.Add(-48*time.Hour))
	addEvent(events, "u1", "databases", true, 10, testNow.Add(-24*time.Hour))
	// Outside the 7d window, must be excluded.
	addEvent(events, "u1", "algorithms", true, 99, testNow.Add(-10*24*time.Hour))
	// Different user, must be excluded.
	addEvent(events, "u2", "algorithms", true, 99, testNow.Add(-time.Hour))

	users.users["u1"] = &models.User{
		ID:                     "u1",
		TotalSessions:          4,
		TotalQuestionsAnswered: 120,
		TotalQuestionsCorrect:  90,
		AverageScore:           75,
		StreakDays:             6,
		ExperienceLevel:        models.LevelIntermediate,
	}

	analytics, err := svc.GetAnalytics(context.Background(), "u1", "7d")
	if err != nil {
		t.Fatalf("GetAnalytics failed: %v", err)
	}

	if analytics.Timeframe != "7d" {
		t.Errorf("expected timeframe 7d, got %q", analytics.Timeframe)
	}
	if analytics.TotalQuestions != 3 {
		t.Errorf("expected 3 events in window, got %d", analytics.TotalQuestions)
	}
	if analytics.CorrectAnswers != 2 {
		t.Errorf("expected 2 correct, got %d", analytics.CorrectAnswers)
	}
	if analytics.Accuracy != 67 {
		t.Errorf("expected accuracy 67, got %d", analytics.Accuracy)
	}
	if analytics.TotalTimeSpent != 90 {
		t.Errorf("expected total time 90, got %d", analytics.TotalTimeSpent)
	}
	if analytics.AverageTimePerQuestion != 30 {
		t.Errorf("expected average time 30, got %d", analytics.AverageTimePerQuestion)
	}

	// Category buckets partition the window's events exactly.
	algo := analytics.CategoryStats["algorithms"]
	dbs := analytics.CategoryStats["databases"]
	if algo.Total != 2 || algo.Correct != 1 || algo.Accuracy != 50 {
		t.Errorf("unexpected algorithms bucket: %+v", algo)
	}
	if dbs.Total != 1 || dbs.Correct != 1 || dbs.Accuracy != 100 {
		t.Errorf("unexpected databases bucket: %+v", dbs)
	}
	categorySum := 0
	for _, cs := range analytics.CategoryStats {
		categorySum += cs.Total
	}
	if categorySum != analytics.TotalQuestions {
		t.Errorf("category buckets must sum to total: %d != %d", categorySum, analytics.TotalQuestions)
	}

	// Daily buckets are ascending and partition the events exactly.
	if len(analytics.DailyProgress) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(analytics.DailyProgress))
	}
	dailySum := 0
	for i, ds := range analytics.DailyProgress {
		dailySum += ds.Total
		if i > 0 && analytics.DailyProgress[i-1].Date >= ds.Date {
			t.Errorf("daily buckets out of order: %q then %q", analytics.DailyProgress[i-1].Date, ds.Date)
		}
	}
	if dailySum != analytics.TotalQuestions {
		t.Errorf("daily buckets must sum to total: %d != %d", dailySum, analytics.TotalQuestions)
	}

	// Lifetime user stats pass through unfiltered.
	if analytics.UserStats.TotalQuestionsAnswered != 120 || analytics.UserStats.StreakDays != 6 {
		t.Errorf("unexpected user stats: %+v", analytics.UserStats)
	}
	if analytics.UserStats.ExperienceLevel != models.LevelIntermediate {
		t.Errorf("expected experience level passthrough, got %q", analytics.UserStats.ExperienceLevel)
	}
}

func TestGetAnalyticsEmptyWindow(t *testing.T) {
	svc, _, _ := newAnalyticsFixture(testNow)

	analytics, err := svc.GetAnalytics(context.Background(), "u1", "7d")
	if err != nil {
		t.Fatalf("GetAnalytics failed: %v", err)
	}
	if analytics.TotalQuestions != 0 || analytics.Accuracy != 0 || analytics.AverageTimePerQuestion != 0 {
		t.Errorf("empty window must yield zeros, got %+v", analytics)
	}
	if len(analytics.DailyProgress) != 0 {
		t.Errorf("expected no day buckets, got %d", len(analytics.DailyProgress))
	}
	if analytics.UserStats.ExperienceLevel != models.LevelBeginner {
		t.Errorf("missing user defaults to beginner, got %q", analytics.UserStats.ExperienceLevel)
	}
}

func TestResolveTimeframe(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
		lookback time.Duration
	}{
		{"7d", "7d", 7 * 24 * time.Hour},
		{"30d", "30d", 30 * 24 * time.Hour},
		{"90d", "90d", 90 * 24 * time.Hour},
		{"1y", "30d", 30 * 24 * time.Hour},
		{"", "30d", 30 * 24 * time.Hour},
	}
	for _, tc := range testCases {
		timeframe, lookback := resolveTimeframe(tc.in)
		if timeframe != tc.expected || lookback != tc.lookback {
			t.Errorf("resolveTimeframe(%q) = (%q, %v), want (%q, %v)", tc.in, timeframe, lookback, tc.expected, tc.lookback)
		}
	}
}

package service

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"progress-service/internal/cache"
	"progress-service/internal/models"
)

const dayFormat = "2006-01-02"

// AnalyticsService recomputes multi-dimensional rollups over the raw answer
// event history. It never mutates store state.
type AnalyticsService struct {
	Events AnswerEventStore
	Users  UserStore
	Cache  *cache.AnalyticsCache

	now func() time.Time
}

func NewAnalyticsService(events AnswerEventStore, users UserStore, analyticsCache *cache.AnalyticsCache) *AnalyticsService {
	return &AnalyticsService{
		Events: events,
		Users:  users,
		Cache:  analyticsCache,
		now:    time.Now,
	}
}

// resolveTimeframe maps a timeframe token to its lookback duration.
// Unrecognized tokens fall back to 30 days.
func resolveTimeframe(timeframe string) (string, time.Duration) {
	switch timeframe {
	case "7d":
		return "7d", 7 * 24 * time.Hour
	case "90d":
		return "90d", 90 * 24 * time.Hour
	case "30d":
		return "30d", 30 * 24 * time.Hour
	default:
		return "30d", 30 * 24 * time.Hour
	}
}

// GetAnalytics scans the user's answer events inside the timeframe and
// produces accuracy, time, category and daily rollups, plus the user's
// unfiltered lifetime totals.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, userID, timeframe string) (*models.Analytics, error) {
	timeframe, lookback := resolveTimeframe(timeframe)

	if cached, err := s.Cache.Get(ctx, userID, timeframe); err != nil {
		log.Printf("analytics cache read failed for user %s: %v", userID, err)
	} else if cached != nil {
		return cached, nil
	}

	since := s.now().Add(-lookback)
	events, err := s.Events.FindByUserSince(ctx, userID, since)
	if err != nil {
		return nil, &StoreError{Op: "find answer events", Err: err}
	}

	total := len(events)
	correct := 0
	totalTime := 0
	categories := make(map[string]models.CategoryStats)
	daily := make(map[string]models.DailyStats)

	for _, e := range events {
		if e.IsCorrect {
			correct++
		}
		totalTime += e.TimeSpentSeconds

		category := e.Category
		if category == "" {
			category = models.DefaultCategory
		}
		cs := categories[category]
		cs.Total++
		if e.IsCorrect {
			cs.Correct++
		}
		categories[category] = cs

		day := e.AnsweredAt.Local().Format(dayFormat)
		ds := daily[day]
		ds.Date = day
		ds.Total++
		if e.IsCorrect {
			ds.Correct++
		}
		daily[day] = ds
	}

	for category, cs := range categories {
		cs.Accuracy = percent(cs.Correct, cs.Total)
		categories[category] = cs
	}

	dailyProgress := make([]models.DailyStats, 0, len(daily))
	for _, ds := range daily {
		ds.Accuracy = percent(ds.Correct, ds.Total)
		dailyProgress = append(dailyProgress, ds)
	}
	sort.Slice(dailyProgress, func(i, j int) bool {
		return dailyProgress[i].Date < dailyProgress[j].Date
	})

	averageTime := 0
	if total > 0 {
		averageTime = int(math.Round(float64(totalTime) / float64(total)))
	}

	analytics := &models.Analytics{
		Timeframe:              timeframe,
		TotalQuestions:         total,
		CorrectAnswers:         correct,
		Accuracy:               percent(correct, total),
		TotalTimeSpent:         totalTime,
		AverageTimePerQuestion: averageTime,
		CategoryStats:          categories,
		DailyProgress:          dailyProgress,
		UserStats:              models.AnalyticsUserStats{ExperienceLevel: models.LevelBeginner},
	}

	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, &StoreError{Op: "find user", Err: err}
	}
	if user != nil {
		analytics.UserStats = models.AnalyticsUserStats{
			TotalSessions:          user.TotalSessions,
			TotalQuestionsAnswered: user.TotalQuestionsAnswered,
			TotalQuestionsCorrect:  user.TotalQuestionsCorrect,
			AverageScore:           user.AverageScore,
			StreakDays:             user.StreakDays,
			ExperienceLevel:        user.ExperienceLevel,
		}
	}

	if err := s.Cache.Set(ctx, userID, analytics); err != nil {
		log.Printf("analytics cache write failed for user %s: %v", userID, err)
	}

	return analytics, nil
}

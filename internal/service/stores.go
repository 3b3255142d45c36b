package service

import (
	"context"
	"time"

	"progress-service/internal/models"
)

// Store interfaces cover exactly the persistence surface the services need.
// internal/repository implements them over MongoDB; tests implement them
// in memory.

type AnswerEventStore interface {
	Create(ctx context.Context, event *models.AnswerEvent) error
	FindByUserAndSession(ctx context.Context, userID, sessionID string) ([]models.AnswerEvent, error)
	FindByUserSince(ctx context.Context, userID string, since time.Time) ([]models.AnswerEvent, error)
}

type QuestionStore interface {
	// FindByID returns nil without error when the question does not exist.
	FindByID(ctx context.Context, id string) (*models.Question, error)
	FindBySession(ctx context.Context, sessionID string) ([]models.Question, error)
	Save(ctx context.Context, question *models.Question) error
}

type SessionStore interface {
	// FindByID returns nil without error when the session does not exist.
	FindByID(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
}

type UserStore interface {
	// FindByID returns nil without error when the user does not exist.
	FindByID(ctx context.Context, id string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

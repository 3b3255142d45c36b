package service

import (
	"context"
	"fmt"
	"time"

	"progress-service/internal/models"
)

// In-memory store fakes used across the service tests.

type fakeEventStore struct {
	events    []models.AnswerEvent
	createErr error
}

func (f *fakeEventStore) Create(_ context.Context, event *models.AnswerEvent) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeEventStore) FindByUserAndSession(_ context.Context, userID, sessionID string) ([]models.AnswerEvent, error) {
	var out []models.AnswerEvent
	for _, e := range f.events {
		if e.UserID == userID && e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventStore) FindByUserSince(_ context.Context, userID string, since time.Time) ([]models.AnswerEvent, error) {
	var out []models.AnswerEvent
	for _, e := range f.events {
		if e.UserID == userID && !e.AnsweredAt.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeQuestionStore struct {
	questions map[string]*models.Question
}

func (f *fakeQuestionStore) FindByID(_ context.Context, id string) (*models.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, nil
	}
	copied := *q
	return &copied, nil
}

func (f *fakeQuestionStore) FindBySession(_ context.Context, sessionID string) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.questions {
		if q.SessionID == sessionID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestionStore) Save(_ context.Context, question *models.Question) error {
	copied := *question
	f.questions[question.ID] = &copied
	return nil
}

type fakeSessionStore struct {
	sessions map[string]*models.Session
}

func (f *fakeSessionStore) FindByID(_ context.Context, id string) (*models.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionStore) Save(_ context.Context, session *models.Session) error {
	copied := *session
	f.sessions[session.ID] = &copied
	return nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) Save(_ context.Context, user *models.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

type recordedEvent struct {
	eventType string
	payload   interface{}
}

type fakePublisher struct {
	published []recordedEvent
}

func (f *fakePublisher) Publish(eventType string, payload interface{}) error {
	f.published = append(f.published, recordedEvent{eventType: eventType, payload: payload})
	return nil
}

// newFixture wires a ProgressService against fresh fakes with a fixed clock
// and deterministic event ids.
func newFixture(at time.Time) (*ProgressService, *fakeEventStore, *fakeQuestionStore, *fakeSessionStore, *fakeUserStore) {
	events := &fakeEventStore{}
	questions := &fakeQuestionStore{questions: map[string]*models.Question{}}
	sessions := &fakeSessionStore{sessions: map[string]*models.Session{}}
	users := &fakeUserStore{users: map[string]*models.User{}}

	svc := NewProgressService(events, questions, sessions, users, nil)
	svc.now = func() time.Time { return at }
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("event-%d", seq)
	}
	return svc, events, questions, sessions, users
}

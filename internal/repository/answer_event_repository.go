package repository

import (
	"context"
	"time"

	"progress-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AnswerEventRepository struct {
	Col *mongo.Collection
}

func NewAnswerEventRepository(db *mongo.Database) *AnswerEventRepository {
	return &AnswerEventRepository{Col: db.Collection("answer_events")}
}

func (r *AnswerEventRepository) Create(ctx context.Context, event *models.AnswerEvent) error {
	_, err := r.Col.InsertOne(ctx, event)
	return err
}

func (r *AnswerEventRepository) FindByUserAndSession(ctx context.Context, userID, sessionID string) ([]models.AnswerEvent, error) {
	return r.find(ctx, bson.M{"user_id": userID, "session_id": sessionID})
}

func (r *AnswerEventRepository) FindByUserSince(ctx context.Context, userID string, since time.Time) ([]models.AnswerEvent, error) {
	return r.find(ctx, bson.M{"user_id": userID, "answered_at": bson.M{"$gte": since}})
}

func (r *AnswerEventRepository) find(ctx context.Context, filter bson.M) ([]models.AnswerEvent, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var events []models.AnswerEvent
	for cur.Next(ctx) {
		var e models.AnswerEvent
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, cur.Err()
}

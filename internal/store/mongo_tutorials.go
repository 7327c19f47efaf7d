package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mahmoodiftee/Learn-server/internal/model"
)

type MongoTutorials struct {
	col *mongo.Collection
}

func NewMongoTutorials(db *mongo.Database) *MongoTutorials {
	return &MongoTutorials{col: db.Collection("ytLinks")}
}

func (s *MongoTutorials) List(ctx context.Context) ([]model.TutorialLink, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	links := []model.TutorialLink{}
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}

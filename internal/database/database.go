package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mahmoodiftee/Learn-server/internal/config"
)

const connectTimeout = 10 * time.Second

// Connect opens a client against the configured deployment and verifies it
// with a ping. The caller owns the client and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the unique indexes backing the lessonNumber and
// email invariants. Handlers still pre-check for friendly error messages;
// the indexes close the check-then-insert race window.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("lessons").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "lesson", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

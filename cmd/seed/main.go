package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mahmoodiftee/Learn-server/internal/config"
	"github.com/mahmoodiftee/Learn-server/internal/database"
	"github.com/mahmoodiftee/Learn-server/internal/model"
	"github.com/mahmoodiftee/Learn-server/internal/store"
)

// Seed file format: {"lessons": [...], "tutorials": [...]}
type seedFile struct {
	Lessons   []model.Lesson       `json:"lessons"`
	Tutorials []model.TutorialLink `json:"tutorials"`
}

func main() {
	filePath := flag.String("file", "data/seed.json", "Path to seed data file")
	flag.Parse()

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.DBName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	lessons := store.NewMongoLessons(db)
	inserted, skipped := 0, 0
	for i := range seed.Lessons {
		lesson := seed.Lessons[i]
		_, err := lessons.Create(ctx, &lesson)
		if errors.Is(err, store.ErrDuplicateLessonNumber) {
			skipped++
			continue
		}
		if err != nil {
			log.Fatalf("Failed to insert lesson %d: %v", lesson.LessonNumber, err)
		}
		inserted++
	}
	log.Printf("Lessons: %d inserted, %d skipped", inserted, skipped)

	// Tutorial links are keyed by URL for idempotent re-runs.
	ytLinks := db.Collection("ytLinks")
	inserted, skipped = 0, 0
	for _, link := range seed.Tutorials {
		err := ytLinks.FindOne(ctx, bson.M{"url": link.URL}).Err()
		if err == nil {
			skipped++
			continue
		}
		if _, err := ytLinks.InsertOne(ctx, link); err != nil {
			log.Fatalf("Failed to insert tutorial %q: %v", link.Title, err)
		}
		inserted++
	}
	log.Printf("Tutorials: %d inserted, %d skipped", inserted, skipped)
}

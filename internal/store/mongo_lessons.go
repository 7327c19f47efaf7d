package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mahmoodiftee/Learn-server/internal/model"
)

type MongoLessons struct {
	col *mongo.Collection
}

func NewMongoLessons(db *mongo.Database) *MongoLessons {
	return &MongoLessons{col: db.Collection("lessons")}
}

func (s *MongoLessons) List(ctx context.Context) ([]model.Lesson, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	lessons := []model.Lesson{}
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (s *MongoLessons) Get(ctx context.Context, id primitive.ObjectID) (*model.Lesson, error) {
	var lesson model.Lesson
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&lesson)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (s *MongoLessons) Create(ctx context.Context, lesson *model.Lesson) (*model.Lesson, error) {
	// Pre-check for a friendly error; the unique index on "lesson" backs
	// this up against concurrent inserts.
	err := s.col.FindOne(ctx, bson.M{"lesson": lesson.LessonNumber}).Err()
	if err == nil {
		return nil, ErrDuplicateLessonNumber
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	if lesson.Vocabulary == nil {
		lesson.Vocabulary = []model.VocabEntry{}
	}
	res, err := s.col.InsertOne(ctx, lesson)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateLessonNumber
	}
	if err != nil {
		return nil, err
	}
	lesson.ID = res.InsertedID.(primitive.ObjectID)
	return lesson, nil
}

func (s *MongoLessons) Update(ctx context.Context, id primitive.ObjectID, lessonNumber int, title string) (*model.Lesson, error) {
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// A different lesson holding the target number is a conflict; keeping
	// the current number is not.
	err := s.col.FindOne(ctx, bson.M{"lesson": lessonNumber, "_id": bson.M{"$ne": id}}).Err()
	if err == nil {
		return nil, ErrDuplicateLessonNumber
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	var lesson model.Lesson
	after := options.After
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lesson": lessonNumber, "title": title}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&lesson)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateLessonNumber
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (s *MongoLessons) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddVocab appends an entry to the lesson addressed by lesson number. The
// filter excludes lessons already holding the pronunciation, so the
// uniqueness check and the append are one atomic write.
func (s *MongoLessons) AddVocab(ctx context.Context, lessonNumber int, entry model.VocabEntry) (*model.Lesson, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"lesson": lessonNumber, "vocabulary.pronunciation": bson.M{"$ne": entry.Pronunciation}},
		bson.M{"$push": bson.M{"vocabulary": entry}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		// Either the lesson is missing or the pronunciation is taken.
		lookupErr := s.col.FindOne(ctx, bson.M{"lesson": lessonNumber}).Err()
		if errors.Is(lookupErr, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if lookupErr != nil {
			return nil, lookupErr
		}
		return nil, ErrDuplicatePronunciation
	}
	if res.ModifiedCount == 0 {
		return nil, ErrNoEffect
	}

	var lesson model.Lesson
	if err := s.col.FindOne(ctx, bson.M{"lesson": lessonNumber}).Decode(&lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// UpdateVocab replaces the entry whose pronunciation matches, in place via
// the positional operator so the rest of the list is untouched.
func (s *MongoLessons) UpdateVocab(ctx context.Context, id primitive.ObjectID, pronunciation string, entry model.VocabEntry) (*model.Lesson, error) {
	var lesson model.Lesson
	after := options.After
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "vocabulary.pronunciation": pronunciation},
		bson.M{"$set": bson.M{"vocabulary.$": entry}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&lesson)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, s.diagnoseVocabMiss(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (s *MongoLessons) DeleteVocab(ctx context.Context, id primitive.ObjectID, pronunciation string) (*model.Lesson, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"vocabulary": bson.M{"pronunciation": pronunciation}}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return nil, ErrVocabNotFound
	}

	var lesson model.Lesson
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// diagnoseVocabMiss tells a missing lesson apart from a missing vocabulary
// entry after a combined filter found nothing.
func (s *MongoLessons) diagnoseVocabMiss(ctx context.Context, id primitive.ObjectID) error {
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return ErrVocabNotFound
}

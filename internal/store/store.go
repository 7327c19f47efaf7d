// Package store holds the persistence contracts for the three collections
// and their MongoDB implementations. Handlers depend on the interfaces so
// the store can be swapped out in tests.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mahmoodiftee/Learn-server/internal/model"
)

var (
	ErrNotFound               = errors.New("record not found")
	ErrVocabNotFound          = errors.New("vocabulary entry not found")
	ErrDuplicateLessonNumber  = errors.New("lesson number already exists")
	ErrDuplicateEmail         = errors.New("email already exists")
	ErrDuplicatePronunciation = errors.New("pronunciation already exists in this lesson")
	ErrNoEffect               = errors.New("write did not modify any record")
)

// Lessons is the persistence contract for lesson records and their embedded
// vocabulary lists. Vocabulary entries are addressed by pronunciation, not
// by a store identity.
type Lessons interface {
	List(ctx context.Context) ([]model.Lesson, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Lesson, error)
	Create(ctx context.Context, lesson *model.Lesson) (*model.Lesson, error)
	Update(ctx context.Context, id primitive.ObjectID, lessonNumber int, title string) (*model.Lesson, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	AddVocab(ctx context.Context, lessonNumber int, entry model.VocabEntry) (*model.Lesson, error)
	UpdateVocab(ctx context.Context, id primitive.ObjectID, pronunciation string, entry model.VocabEntry) (*model.Lesson, error)
	DeleteVocab(ctx context.Context, id primitive.ObjectID, pronunciation string) (*model.Lesson, error)
}

type Users interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (*model.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Tutorials is read-only; tutorial links are provisioned outside this
// service.
type Tutorials interface {
	List(ctx context.Context) ([]model.TutorialLink, error)
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mahmoodiftee/Learn-server/internal/logger"
	"github.com/mahmoodiftee/Learn-server/internal/model"
	"github.com/mahmoodiftee/Learn-server/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeLessons is an in-memory store.Lessons with the same error semantics as
// the MongoDB implementation.
type fakeLessons struct {
	lessons    []model.Lesson
	failWrites bool // makes vocabulary appends report a zero-modified write
}

func cloneLesson(l model.Lesson) model.Lesson {
	out := l
	out.Vocabulary = append([]model.VocabEntry{}, l.Vocabulary...)
	return out
}

func (f *fakeLessons) List(ctx context.Context) ([]model.Lesson, error) {
	out := make([]model.Lesson, 0, len(f.lessons))
	for _, l := range f.lessons {
		out = append(out, cloneLesson(l))
	}
	return out, nil
}

func (f *fakeLessons) Get(ctx context.Context, id primitive.ObjectID) (*model.Lesson, error) {
	for i := range f.lessons {
		if f.lessons[i].ID == id {
			l := cloneLesson(f.lessons[i])
			return &l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeLessons) Create(ctx context.Context, lesson *model.Lesson) (*model.Lesson, error) {
	for i := range f.lessons {
		if f.lessons[i].LessonNumber == lesson.LessonNumber {
			return nil, store.ErrDuplicateLessonNumber
		}
	}
	lesson.ID = primitive.NewObjectID()
	if lesson.Vocabulary == nil {
		lesson.Vocabulary = []model.VocabEntry{}
	}
	f.lessons = append(f.lessons, cloneLesson(*lesson))
	return lesson, nil
}

func (f *fakeLessons) Update(ctx context.Context, id primitive.ObjectID, lessonNumber int, title string) (*model.Lesson, error) {
	idx := -1
	for i := range f.lessons {
		if f.lessons[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, store.ErrNotFound
	}
	for i := range f.lessons {
		if i != idx && f.lessons[i].LessonNumber == lessonNumber {
			return nil, store.ErrDuplicateLessonNumber
		}
	}
	f.lessons[idx].LessonNumber = lessonNumber
	f.lessons[idx].Title = title
	l := cloneLesson(f.lessons[idx])
	return &l, nil
}

func (f *fakeLessons) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.lessons {
		if f.lessons[i].ID == id {
			f.lessons = append(f.lessons[:i], f.lessons[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeLessons) AddVocab(ctx context.Context, lessonNumber int, entry model.VocabEntry) (*model.Lesson, error) {
	idx := -1
	for i := range f.lessons {
		if f.lessons[i].LessonNumber == lessonNumber {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, store.ErrNotFound
	}
	for _, v := range f.lessons[idx].Vocabulary {
		if v.Pronunciation == entry.Pronunciation {
			return nil, store.ErrDuplicatePronunciation
		}
	}
	if f.failWrites {
		return nil, store.ErrNoEffect
	}
	f.lessons[idx].Vocabulary = append(f.lessons[idx].Vocabulary, entry)
	l := cloneLesson(f.lessons[idx])
	return &l, nil
}

func (f *fakeLessons) UpdateVocab(ctx context.Context, id primitive.ObjectID, pronunciation string, entry model.VocabEntry) (*model.Lesson, error) {
	idx := -1
	for i := range f.lessons {
		if f.lessons[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, store.ErrNotFound
	}
	for i, v := range f.lessons[idx].Vocabulary {
		if v.Pronunciation == pronunciation {
			f.lessons[idx].Vocabulary[i] = entry
			l := cloneLesson(f.lessons[idx])
			return &l, nil
		}
	}
	return nil, store.ErrVocabNotFound
}

func (f *fakeLessons) DeleteVocab(ctx context.Context, id primitive.ObjectID, pronunciation string) (*model.Lesson, error) {
	idx := -1
	for i := range f.lessons {
		if f.lessons[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, store.ErrNotFound
	}
	for i, v := range f.lessons[idx].Vocabulary {
		if v.Pronunciation == pronunciation {
			f.lessons[idx].Vocabulary = append(f.lessons[idx].Vocabulary[:i], f.lessons[idx].Vocabulary[i+1:]...)
			l := cloneLesson(f.lessons[idx])
			return &l, nil
		}
	}
	return nil, store.ErrVocabNotFound
}

type fakeUsers struct {
	users []model.User
}

func (f *fakeUsers) List(ctx context.Context) ([]model.User, error) {
	return append([]model.User{}, f.users...), nil
}

func (f *fakeUsers) Create(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	for i := range f.users {
		if f.users[i].Email == user.Email {
			return primitive.NilObjectID, store.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return user.ID, nil
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Role = role
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeTutorials struct {
	links []model.TutorialLink
}

func (f *fakeTutorials) List(ctx context.Context) ([]model.TutorialLink, error) {
	return append([]model.TutorialLink{}, f.links...), nil
}

const testSecret = "test-secret"

// newTestRouter wires all routes against the given fakes, mirroring the
// route table in cmd/server.
func newTestRouter(lessons *fakeLessons, users *fakeUsers, tutorials *fakeTutorials) *gin.Engine {
	log := logger.NewNop()
	lessonHandler := NewLessonHandler(lessons, log)
	userHandler := NewUserHandler(users, log)
	authHandler := NewAuthHandler(users, testSecret, log)
	tutorialHandler := NewTutorialHandler(tutorials, log)

	r := gin.New()
	r.GET("/tutorials", tutorialHandler.List)
	r.GET("/lessons", lessonHandler.List)
	r.POST("/lessons", lessonHandler.Create)
	r.GET("/lessons/:id", lessonHandler.Get)
	r.PATCH("/lessons/:id", lessonHandler.Update)
	r.DELETE("/lessons/:id", lessonHandler.Delete)
	r.PATCH("/lessons/:id/vocabulary", lessonHandler.AddVocab)
	r.PATCH("/lessons/:id/vocabulary/:pronunciation", lessonHandler.UpdateVocab)
	r.DELETE("/lessons/:id/vocabulary/:pronunciation", lessonHandler.DeleteVocab)
	r.GET("/users", userHandler.List)
	r.PATCH("/users/:id", userHandler.SetRole)
	r.DELETE("/users/:id", userHandler.Delete)
	r.POST("/registration", authHandler.Register)
	r.POST("/login", authHandler.Login)
	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder, out interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), out)
}

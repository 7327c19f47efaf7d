package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// VocabEntry is one vocabulary item embedded in a lesson. Entries have no
// store identity of their own; pronunciation is the addressing key within a
// lesson and must stay unique inside that lesson's list.
type VocabEntry struct {
	Word          string `bson:"word" json:"word"`
	Pronunciation string `bson:"pronunciation" json:"pronunciation"`
	Meaning       string `bson:"meaning" json:"meaning"`
	DateAdded     string `bson:"dateAdded" json:"dateAdded"`
	LessonNumber  int    `bson:"lessonNumber" json:"lessonNumber"`
	AuthorEmail   string `bson:"authorEmail" json:"authorEmail"`
}

// Lesson is a document in the lessons collection. The lesson number lives in
// the document field "lesson" (the original data format) while the API
// exposes it as lessonNumber.
type Lesson struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LessonNumber int                `bson:"lesson" json:"lessonNumber"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Vocabulary   []VocabEntry       `bson:"vocabulary" json:"vocabulary"`
}

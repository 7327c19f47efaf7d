package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// TutorialLink mirrors a document in the ytLinks collection. Records are
// provisioned externally; this service only reads them.
type TutorialLink struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	URL       string             `bson:"url" json:"url"`
	Thumbnail string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
}

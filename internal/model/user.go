package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	ProfileImage string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Role         string             `bson:"role" json:"role"`
}

// PublicUser is the projection returned on every read path. The credential
// hash stays out of it entirely rather than relying on json tags alone.
type PublicUser struct {
	ID           primitive.ObjectID `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	ProfileImage string             `json:"profileImage,omitempty"`
	Role         string             `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
		Role:         u.Role,
	}
}

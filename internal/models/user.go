package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User is a document in the "users" collection. Password holds the bcrypt
// hash, never plaintext, and is excluded from JSON responses. Role is stored
// but carries no access-control semantics.
type User struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	Email    string   `bson:"email" json:"email"`
	Password string   `bson:"password" json:"-"`
	Role     UserRole `bson:"role" json:"role"`
	Name     string   `bson:"name" json:"name"`
	Lastname string   `bson:"lastname" json:"lastname"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

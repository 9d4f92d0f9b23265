package dto

import (
	"users-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,trimmed,email"`
	Password string `json:"password" validate:"required,trimmed"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
	Name     string `json:"name" validate:"required,trimmed"`
	Lastname string `json:"lastname" validate:"required,trimmed"`
}

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,trimmed,email"`
	Password string `json:"password" validate:"required,trimmed"`
}

// UpdateUserRequest carries an arbitrary subset of user fields. Nil means the
// field was absent from the request body.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
}

// Fields returns the update document for the fields that were supplied.
func (r *UpdateUserRequest) Fields() bson.M {
	fields := bson.M{}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Password != nil {
		fields["password"] = *r.Password
	}
	if r.Role != nil {
		fields["role"] = *r.Role
	}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Lastname != nil {
		fields["lastname"] = *r.Lastname
	}
	return fields
}

// UserProjection is the reduced {id,name} view returned by most operations.
type UserProjection struct {
	ID   bson.ObjectID `json:"id"`
	Name string        `json:"name"`
}

func NewUserProjection(u *models.User) UserProjection {
	return UserProjection{ID: u.ID, Name: u.Name}
}

type UserResponse struct {
	Message string         `json:"message"`
	User    UserProjection `json:"user"`
}

type UsersResponse struct {
	Message string           `json:"message"`
	Users   []UserProjection `json:"users"`
}

type LoginUserResponse struct {
	Message     string       `json:"message"`
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// Package repository is the record store adapter for the single logical
// "users" collection.
package repository

import (
	"context"
	"errors"

	"users-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrNotFound = errors.New("record not found")

// UserRepository performs filter-based reads and writes against the users
// collection. FindAll returns records in the store's natural iteration order.
type UserRepository interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) (bson.ObjectID, error)
	UpdateByID(ctx context.Context, id bson.ObjectID, fields bson.M) error
	DeleteByID(ctx context.Context, id bson.ObjectID) error
}

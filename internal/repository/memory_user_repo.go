package repository

import (
	"context"
	"sync"
	"time"

	"users-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryUserRepository is an in-memory UserRepository used by tests and local
// development. Insertion order is the iteration order.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

func (r *MemoryUserRepository) Insert(ctx context.Context, user *models.User) (bson.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := user.ID
	if id.IsZero() {
		id = bson.NewObjectID()
	}

	stored := *user
	stored.ID = id
	r.users = append(r.users, stored)
	return id, nil
}

func (r *MemoryUserRepository) UpdateByID(ctx context.Context, id bson.ObjectID, fields bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		applyFields(&r.users[i], fields)
		return nil
	}
	return ErrNotFound
}

func (r *MemoryUserRepository) DeleteByID(ctx context.Context, id bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func applyFields(user *models.User, fields bson.M) {
	for key, value := range fields {
		switch key {
		case "email":
			if s, ok := value.(string); ok {
				user.Email = s
			}
		case "password":
			if s, ok := value.(string); ok {
				user.Password = s
			}
		case "role":
			if s, ok := value.(string); ok {
				user.Role = models.UserRole(s)
			}
		case "name":
			if s, ok := value.(string); ok {
				user.Name = s
			}
		case "lastname":
			if s, ok := value.(string); ok {
				user.Lastname = s
			}
		case "updatedAt":
			if t, ok := value.(time.Time); ok {
				user.UpdatedAt = t
			}
		}
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"users-backend/internal/dto"
	"users-backend/internal/models"
	"users-backend/internal/password"
	"users-backend/internal/repository"
	"users-backend/internal/token"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoUsers            = errors.New("no users found")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrEmptyUpdate        = errors.New("no fields to update")
	ErrEmailTaken         = errors.New("email already registered")
)

// UserService orchestrates the six account operations: validation, store
// lookups, credential and token work, and response shaping.
type UserService struct {
	repo   repository.UserRepository
	tokens *token.Manager
	logger *slog.Logger
}

func NewUserService(repo repository.UserRepository, tokens *token.Manager, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Register validates the request, rejects duplicate emails, hashes the
// password and inserts the record. The email existence check and the insert
// are separate store calls, so two concurrent registrations for the same
// email can both pass the check; there is no unique index backing it up.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		s.logger.Error("register validation failed", "error", err)
		return nil, err
	}

	s.logger.Debug("looking up email before registration", "email", req.Email)
	_, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil {
		s.logger.Error("user already exists", "email", req.Email)
		return nil, ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Email:     req.Email,
		Password:  hash,
		Role:      models.UserRole(req.Role),
		Name:      req.Name,
		Lastname:  req.Lastname,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info("user registered", "id", id.Hex(), "email", user.Email)
	return user, nil
}

// Login verifies the credentials and issues a signed bearer token.
func (s *UserService) Login(ctx context.Context, req *dto.LoginUserRequest) (*models.User, string, error) {
	if err := req.Validate(); err != nil {
		s.logger.Error("login validation failed", "error", err)
		return nil, "", err
	}

	s.logger.Debug("looking up user", "email", req.Email)
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("user not registered", "email", req.Email)
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if !password.Verify(req.Password, user.Password) {
		s.logger.Error("password mismatch", "email", req.Email)
		return nil, "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user authenticated", "id", user.ID.Hex(), "email", user.Email)
	return user, signed, nil
}

// ListUsers returns every record in the store's natural order. An empty
// collection maps to ErrNoUsers, the same way a nil result does.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		s.logger.Error("no users in the database")
		return nil, ErrNoUsers
	}
	return users, nil
}

// GetUser fetches a single record by its hex id. A malformed id never
// matches a record and reports not found.
func (s *UserService) GetUser(ctx context.Context, idHex string) (*models.User, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		s.logger.Error("invalid user id", "id", idHex, "error", err)
		return nil, ErrUserNotFound
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the record and returns it as it was before deletion.
func (s *UserService) DeleteUser(ctx context.Context, idHex string) (*models.User, error) {
	user, err := s.GetUser(ctx, idHex)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, user.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.logger.Info("user deleted", "id", user.ID.Hex(), "email", user.Email)
	return user, nil
}

// UpdateUser patches the supplied fields onto the record. The returned record
// is the one fetched before patching. A password sent here is stored as-is;
// hashing happens only at registration.
func (s *UserService) UpdateUser(ctx context.Context, idHex string, req *dto.UpdateUserRequest) (*models.User, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		s.logger.Error("empty update body", "id", idHex)
		return nil, ErrEmptyUpdate
	}

	user, err := s.GetUser(ctx, idHex)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		existing, err := s.repo.FindByEmail(ctx, *req.Email)
		if err == nil && existing.ID != user.ID {
			s.logger.Error("email already registered", "email", *req.Email)
			return nil, ErrEmailTaken
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
	}

	fields["updatedAt"] = time.Now()

	if err := s.repo.UpdateByID(ctx, user.ID, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.logger.Info("user updated", "id", user.ID.Hex())
	return user, nil
}

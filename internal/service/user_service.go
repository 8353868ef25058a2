package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/store"
)

// UserService provides user registration.
type UserService interface {
	// Register creates a user record for profile["email"] if none exists.
	// Registration is idempotent: an already-registered email is not an
	// error; it returns the existing state with Created=false and performs
	// no write.
	Register(ctx context.Context, profile bson.M) (*Registration, error)
}

// Registration reports the outcome of a Register call.
type Registration struct {
	// InsertedID is the hex ID of the newly created user document.
	// Empty when the user already existed.
	InsertedID string

	// Created is true when this call created the user.
	Created bool
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userStore store.UserStore, logger *slog.Logger) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		logger:    logger.With("component", "user_service"),
	}
}

// Register implements UserService.
func (s *UserServiceImpl) Register(ctx context.Context, profile bson.M) (*Registration, error) {
	email, _ := profile[domain.FieldEmail].(string)
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}

	// Look up first: registering an existing email is an idempotent no-op.
	_, err := s.userStore.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Debug("user already registered", "email", email)
		return &Registration{Created: false}, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		s.logger.Error("failed to look up user", "error", err, "email", email)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	id, err := s.userStore.Create(ctx, profile)
	if err != nil {
		// A concurrent registration can win the race between the lookup
		// and the insert; the unique index turns that into a duplicate
		// error, which is still an idempotent success.
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("user registered concurrently", "email", email)
			return &Registration{Created: false}, nil
		}
		s.logger.Error("failed to create user", "error", err, "email", email)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "email", email, "user_id", id)

	return &Registration{InsertedID: id, Created: true}, nil
}

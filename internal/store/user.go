package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/taskward/taskward-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user profile document and returns its generated ID
	// as an ObjectID hex string. The profile is stored as-is apart from a
	// created_at stamp. Returns ErrEmailExists if the email is already
	// taken.
	Create(ctx context.Context, profile bson.M) (string, error)

	// GetByEmail retrieves a user document by email address.
	// Returns ErrUserNotFound if no user exists for the email.
	GetByEmail(ctx context.Context, email string) (bson.M, error)
}

const userCollection = "users"

type mongoUserStore struct {
	db *mongo.Database
}

// NewMongoUserStore creates a UserStore backed by the given database.
// It ensures the unique index on email that enforces the one-user-per-email
// invariant; index creation failure is fatal since the invariant cannot be
// guaranteed without it.
func NewMongoUserStore(ctx context.Context, db *mongo.Database) (UserStore, error) {
	_, err := db.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: domain.FieldEmail, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user email index: %w", err)
	}

	return &mongoUserStore{db: db}, nil
}

func (s *mongoUserStore) Create(ctx context.Context, profile bson.M) (string, error) {
	doc := bson.M{}
	for k, v := range profile {
		doc[k] = v
	}
	doc[domain.FieldCreatedAt] = time.Now().UTC()

	result, err := s.db.Collection(userCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrEmailExists
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("failed to convert inserted ID to ObjectID")
	}

	return objectID.Hex(), nil
}

func (s *mongoUserStore) GetByEmail(ctx context.Context, email string) (bson.M, error) {
	result := s.db.Collection(userCollection).FindOne(ctx, bson.M{domain.FieldEmail: email})
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	var user bson.M
	if err := result.Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return user, nil
}

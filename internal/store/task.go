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

// TaskStore defines the interface for task data persistence.
//
// Every read, update, and delete is scoped to a (id, ownerEmail) compound
// filter: a task is never visible or mutable through this interface by a
// caller who does not own it.
type TaskStore interface {
	// Create inserts a new task document and returns its generated ID as an
	// ObjectID hex string. The document is stored as-is apart from a
	// created_at stamp.
	Create(ctx context.Context, doc bson.M) (string, error)

	// GetOne fetches the task whose ID and author.email both match.
	// Returns ErrTaskNotFound on zero matches or a malformed ID; a
	// cross-owner lookup is indistinguishable from a missing task.
	GetOne(ctx context.Context, id, ownerEmail string) (bson.M, error)

	// List returns a page of the owner's tasks, newest first, using
	// skip/limit pagination.
	List(ctx context.Context, ownerEmail string, offset, limit int64) ([]bson.M, error)

	// CountByOwner returns the total number of tasks owned by ownerEmail,
	// regardless of pagination.
	CountByOwner(ctx context.Context, ownerEmail string) (int64, error)

	// CountByOwnerAndStatus returns the number of the owner's tasks in the
	// given status.
	CountByOwnerAndStatus(ctx context.Context, ownerEmail string, status domain.Status) (int64, error)

	// Update merges the given fields into the matching task ($set, field
	// level). Fields absent from the patch are left untouched. Matching
	// zero documents is not an error; the counts report it.
	Update(ctx context.Context, id, ownerEmail string, fields bson.M) (matched, modified int64, err error)

	// Delete removes the matching task and reports how many documents were
	// deleted (0 or 1).
	Delete(ctx context.Context, id, ownerEmail string) (int64, error)
}

const taskCollection = "tasks"

type mongoTaskStore struct {
	db *mongo.Database
}

// NewMongoTaskStore creates a TaskStore backed by the given database.
// It ensures the index supporting owner-scoped lookups and the stable
// newest-first listing order.
func NewMongoTaskStore(ctx context.Context, db *mongo.Database) (TaskStore, error) {
	_, err := db.Collection(taskCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: domain.FieldAuthorEmail, Value: 1},
			{Key: domain.FieldCreatedAt, Value: -1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task owner index: %w", err)
	}

	return &mongoTaskStore{db: db}, nil
}

// ownerFilter builds the compound (id, owner) filter shared by GetOne,
// Update, and Delete.
func ownerFilter(id, ownerEmail string) (bson.M, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidID, err)
	}

	return bson.M{
		domain.FieldID:          objectID,
		domain.FieldAuthorEmail: ownerEmail,
	}, nil
}

func (s *mongoTaskStore) Create(ctx context.Context, doc bson.M) (string, error) {
	stamped := bson.M{}
	for k, v := range doc {
		stamped[k] = v
	}
	stamped[domain.FieldCreatedAt] = time.Now().UTC()

	result, err := s.db.Collection(taskCollection).InsertOne(ctx, stamped)
	if err != nil {
		return "", fmt.Errorf("failed to insert task: %w", err)
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("failed to convert inserted ID to ObjectID")
	}

	return objectID.Hex(), nil
}

func (s *mongoTaskStore) GetOne(ctx context.Context, id, ownerEmail string) (bson.M, error) {
	filter, err := ownerFilter(id, ownerEmail)
	if err != nil {
		// A malformed ID can never match a document.
		return nil, ErrTaskNotFound
	}

	result := s.db.Collection(taskCollection).FindOne(ctx, filter)
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	var task bson.M
	if err := result.Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to decode task: %w", err)
	}

	return task, nil
}

func (s *mongoTaskStore) List(ctx context.Context, ownerEmail string, offset, limit int64) ([]bson.M, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: domain.FieldCreatedAt, Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := s.db.Collection(taskCollection).Find(
		ctx,
		bson.M{domain.FieldAuthorEmail: ownerEmail},
		findOptions,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []bson.M{}
	for cursor.Next(ctx) {
		var task bson.M
		if err := cursor.Decode(&task); err != nil {
			return nil, fmt.Errorf("failed to decode task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("task cursor failed: %w", err)
	}

	return tasks, nil
}

func (s *mongoTaskStore) CountByOwner(ctx context.Context, ownerEmail string) (int64, error) {
	count, err := s.db.Collection(taskCollection).CountDocuments(
		ctx,
		bson.M{domain.FieldAuthorEmail: ownerEmail},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	return count, nil
}

func (s *mongoTaskStore) CountByOwnerAndStatus(
	ctx context.Context,
	ownerEmail string,
	status domain.Status,
) (int64, error) {
	count, err := s.db.Collection(taskCollection).CountDocuments(ctx, bson.M{
		domain.FieldAuthorEmail: ownerEmail,
		domain.FieldStatus:      string(status),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks by status: %w", err)
	}

	return count, nil
}

func (s *mongoTaskStore) Update(
	ctx context.Context,
	id, ownerEmail string,
	fields bson.M,
) (int64, int64, error) {
	filter, err := ownerFilter(id, ownerEmail)
	if err != nil {
		// Nothing can match a malformed ID; report zero counts like any
		// other unmatched update.
		return 0, 0, nil
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set[domain.FieldUpdatedAt] = time.Now().UTC()

	result, err := s.db.Collection(taskCollection).UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to update task: %w", err)
	}

	return result.MatchedCount, result.ModifiedCount, nil
}

func (s *mongoTaskStore) Delete(ctx context.Context, id, ownerEmail string) (int64, error) {
	filter, err := ownerFilter(id, ownerEmail)
	if err != nil {
		return 0, nil
	}

	result, err := s.db.Collection(taskCollection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete task: %w", err)
	}

	return result.DeletedCount, nil
}

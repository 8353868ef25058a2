package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/taskward/taskward-api/internal/domain"
)

// testDB connects to the instance named by MONGODB_TEST_URI and returns a
// throwaway database. Tests are skipped when the variable is unset so the
// suite stays runnable without infrastructure.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set; skipping store integration tests")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database(fmt.Sprintf("taskward_test_%d", time.Now().UnixNano()))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

func TestUserStoreCreateAndGet(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	users, err := NewMongoUserStore(ctx, db)
	require.NoError(t, err)

	profile := bson.M{"email": "a@x.com", "name": "Alice"}
	id, err := users.Create(ctx, profile)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got["name"])
	assert.Contains(t, got, domain.FieldCreatedAt)

	// Duplicate email violates the unique index.
	_, err = users.Create(ctx, bson.M{"email": "a@x.com"})
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = users.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTaskStoreOwnerScoping(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	tasks, err := NewMongoTaskStore(ctx, db)
	require.NoError(t, err)

	id, err := tasks.Create(ctx, bson.M{
		"title":  "T1",
		"status": "to-do",
		"author": bson.M{"email": "a@x.com"},
	})
	require.NoError(t, err)

	// Owner sees the task.
	got, err := tasks.GetOne(ctx, id, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "T1", got["title"])

	// A different owner gets not-found, never the data.
	_, err = tasks.GetOne(ctx, id, "b@x.com")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	// Malformed IDs behave like missing tasks.
	_, err = tasks.GetOne(ctx, "not-an-object-id", "a@x.com")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	// Cross-owner update and delete match nothing.
	matched, modified, err := tasks.Update(ctx, id, "b@x.com", bson.M{"status": "completed"})
	require.NoError(t, err)
	assert.Zero(t, matched)
	assert.Zero(t, modified)

	deleted, err := tasks.Delete(ctx, id, "b@x.com")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = tasks.Delete(ctx, id, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestTaskStorePartialUpdate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	tasks, err := NewMongoTaskStore(ctx, db)
	require.NoError(t, err)

	id, err := tasks.Create(ctx, bson.M{
		"title":  "T1",
		"body":   "details",
		"status": "to-do",
		"author": bson.M{"email": "a@x.com"},
	})
	require.NoError(t, err)

	matched, modified, err := tasks.Update(ctx, id, "a@x.com", bson.M{"status": "completed"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)
	assert.Equal(t, int64(1), modified)

	got, err := tasks.GetOne(ctx, id, "a@x.com")
	require.NoError(t, err)

	// Only the patched field changed; everything else survives.
	assert.Equal(t, "completed", got["status"])
	assert.Equal(t, "T1", got["title"])
	assert.Equal(t, "details", got["body"])
	assert.Contains(t, got, domain.FieldUpdatedAt)
}

func TestTaskStoreListAndCounts(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	tasks, err := NewMongoTaskStore(ctx, db)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := tasks.Create(ctx, bson.M{
			"title":  fmt.Sprintf("task-%d", i),
			"status": "to-do",
			"author": bson.M{"email": "a@x.com"},
		})
		require.NoError(t, err)
	}
	_, err = tasks.Create(ctx, bson.M{
		"title":  "other",
		"status": "ongoing",
		"author": bson.M{"email": "b@x.com"},
	})
	require.NoError(t, err)

	page, err := tasks.List(ctx, "a@x.com", 0, 3)
	require.NoError(t, err)
	assert.Len(t, page, 3)

	rest, err := tasks.List(ctx, "a@x.com", 3, 3)
	require.NoError(t, err)
	assert.Len(t, rest, 2)

	total, err := tasks.CountByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	toDo, err := tasks.CountByOwnerAndStatus(ctx, "a@x.com", domain.StatusToDo)
	require.NoError(t, err)
	assert.Equal(t, int64(5), toDo)

	ongoing, err := tasks.CountByOwnerAndStatus(ctx, "a@x.com", domain.StatusOngoing)
	require.NoError(t, err)
	assert.Zero(t, ongoing)
}

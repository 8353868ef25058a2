package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/taskward/taskward-api/internal/domain"
)

// discardLogger returns a logger whose output is thrown away, for wiring
// services under test.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockUserStore is a testify mock for store.UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, profile bson.M) (string, error) {
	args := m.Called(ctx, profile)
	return args.String(0), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (bson.M, error) {
	args := m.Called(ctx, email)
	var doc bson.M
	if arg := args.Get(0); arg != nil {
		doc = arg.(bson.M)
	}
	return doc, args.Error(1)
}

// MockTaskStore is a testify mock for store.TaskStore.
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, doc bson.M) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}

func (m *MockTaskStore) GetOne(ctx context.Context, id, ownerEmail string) (bson.M, error) {
	args := m.Called(ctx, id, ownerEmail)
	var doc bson.M
	if arg := args.Get(0); arg != nil {
		doc = arg.(bson.M)
	}
	return doc, args.Error(1)
}

func (m *MockTaskStore) List(
	ctx context.Context,
	ownerEmail string,
	offset, limit int64,
) ([]bson.M, error) {
	args := m.Called(ctx, ownerEmail, offset, limit)
	var docs []bson.M
	if arg := args.Get(0); arg != nil {
		docs = arg.([]bson.M)
	}
	return docs, args.Error(1)
}

func (m *MockTaskStore) CountByOwner(ctx context.Context, ownerEmail string) (int64, error) {
	args := m.Called(ctx, ownerEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskStore) CountByOwnerAndStatus(
	ctx context.Context,
	ownerEmail string,
	status domain.Status,
) (int64, error) {
	args := m.Called(ctx, ownerEmail, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskStore) Update(
	ctx context.Context,
	id, ownerEmail string,
	fields bson.M,
) (int64, int64, error) {
	args := m.Called(ctx, id, ownerEmail, fields)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockTaskStore) Delete(ctx context.Context, id, ownerEmail string) (int64, error) {
	args := m.Called(ctx, id, ownerEmail)
	return args.Get(0).(int64), args.Error(1)
}

package api

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/service"
	"github.com/taskward/taskward-api/internal/service/auth"
)

// MockJWTService stubs the token service.
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	var claims *auth.Claims
	if arg := args.Get(0); arg != nil {
		claims = arg.(*auth.Claims)
	}
	return claims, args.Error(1)
}

// MockUserService stubs user registration.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, profile bson.M) (*service.Registration, error) {
	args := m.Called(ctx, profile)
	var reg *service.Registration
	if arg := args.Get(0); arg != nil {
		reg = arg.(*service.Registration)
	}
	return reg, args.Error(1)
}

// MockTaskService stubs task operations.
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) GetTask(
	ctx context.Context,
	callerEmail, ownerEmail, taskID string,
) (bson.M, error) {
	args := m.Called(ctx, callerEmail, ownerEmail, taskID)
	var doc bson.M
	if arg := args.Get(0); arg != nil {
		doc = arg.(bson.M)
	}
	return doc, args.Error(1)
}

func (m *MockTaskService) ListTasks(
	ctx context.Context,
	callerEmail, ownerEmail string,
	page, size int,
) (*service.TaskPage, error) {
	args := m.Called(ctx, callerEmail, ownerEmail, page, size)
	var result *service.TaskPage
	if arg := args.Get(0); arg != nil {
		result = arg.(*service.TaskPage)
	}
	return result, args.Error(1)
}

func (m *MockTaskService) CreateTask(
	ctx context.Context,
	callerEmail, ownerEmail string,
	payload bson.M,
) (string, error) {
	args := m.Called(ctx, callerEmail, ownerEmail, payload)
	return args.String(0), args.Error(1)
}

func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	callerEmail, ownerEmail, taskID string,
	payload bson.M,
) (*service.UpdateResult, error) {
	args := m.Called(ctx, callerEmail, ownerEmail, taskID, payload)
	var result *service.UpdateResult
	if arg := args.Get(0); arg != nil {
		result = arg.(*service.UpdateResult)
	}
	return result, args.Error(1)
}

func (m *MockTaskService) DeleteTask(
	ctx context.Context,
	callerEmail, ownerEmail, taskID string,
) (int64, error) {
	args := m.Called(ctx, callerEmail, ownerEmail, taskID)
	return args.Get(0).(int64), args.Error(1)
}

// MockStatsService stubs statistics.
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Summary(
	ctx context.Context,
	callerEmail, ownerEmail string,
) (*domain.StatusSummary, error) {
	args := m.Called(ctx, callerEmail, ownerEmail)
	var summary *domain.StatusSummary
	if arg := args.Get(0); arg != nil {
		summary = arg.(*domain.StatusSummary)
	}
	return summary, args.Error(1)
}

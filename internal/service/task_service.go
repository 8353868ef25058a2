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

// MaxPageSize caps the number of tasks returned by a single list call.
// Larger requests are clamped, not rejected.
const MaxPageSize = 100

// TaskService provides owner-scoped CRUD over tasks plus paginated listing.
//
// Every operation takes the authenticated caller's email alongside the owner
// email claimed in the request; a mismatch fails with ErrForbidden before
// any store access.
type TaskService interface {
	// GetTask fetches one task by (id, owner). A missing or cross-owner
	// task yields (nil, nil): data absence is an empty success, not an
	// error.
	GetTask(ctx context.Context, callerEmail, ownerEmail, taskID string) (bson.M, error)

	// ListTasks returns one page of the owner's tasks, newest first, plus
	// the total count of all the owner's tasks. Pages are 0-indexed; size
	// must be positive and is clamped to MaxPageSize.
	ListTasks(ctx context.Context, callerEmail, ownerEmail string, page, size int) (*TaskPage, error)

	// CreateTask inserts a new task for the owner and returns its ID.
	// The ownership field is always derived from the verified owner, never
	// from the request payload.
	CreateTask(ctx context.Context, callerEmail, ownerEmail string, payload bson.M) (string, error)

	// UpdateTask merges the payload's fields into the matching task.
	// Matching zero documents is not an error; the result reports zero
	// counts.
	UpdateTask(ctx context.Context, callerEmail, ownerEmail, taskID string, payload bson.M) (*UpdateResult, error)

	// DeleteTask removes the matching task and reports how many documents
	// were deleted (0 or 1).
	DeleteTask(ctx context.Context, callerEmail, ownerEmail, taskID string) (int64, error)
}

// TaskPage is one page of a task listing.
type TaskPage struct {
	Tasks      []bson.M
	TotalCount int64
}

// UpdateResult reports the outcome of an update.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) TaskService {
	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}
}

// authorize enforces that the verified caller identity equals the owner
// claimed in the request.
func (s *TaskServiceImpl) authorize(callerEmail, ownerEmail string) error {
	if callerEmail == "" || callerEmail != ownerEmail {
		s.logger.Warn("owner mismatch",
			"caller_email", callerEmail,
			"requested_owner", ownerEmail)
		return ErrForbidden
	}
	return nil
}

// GetTask implements TaskService.
func (s *TaskServiceImpl) GetTask(
	ctx context.Context,
	callerEmail, ownerEmail, taskID string,
) (bson.M, error) {
	if err := s.authorize(callerEmail, ownerEmail); err != nil {
		return nil, err
	}

	task, err := s.taskStore.GetOne(ctx, taskID, ownerEmail)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to get task", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// ListTasks implements TaskService.
func (s *TaskServiceImpl) ListTasks(
	ctx context.Context,
	callerEmail, ownerEmail string,
	page, size int,
) (*TaskPage, error) {
	if err := s.authorize(callerEmail, ownerEmail); err != nil {
		return nil, err
	}

	if page < 0 {
		return nil, ErrInvalidPage
	}
	if size <= 0 {
		return nil, ErrInvalidPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	// The count and the page are two independent round-trips; under
	// concurrent mutation they may be mutually inconsistent, which is
	// acceptable for this read-mostly, single-owner usage.
	total, err := s.taskStore.CountByOwner(ctx, ownerEmail)
	if err != nil {
		s.logger.Error("failed to count tasks", "error", err, "owner", ownerEmail)
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	tasks, err := s.taskStore.List(ctx, ownerEmail, int64(page)*int64(size), int64(size))
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "owner", ownerEmail)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &TaskPage{Tasks: tasks, TotalCount: total}, nil
}

// CreateTask implements TaskService.
func (s *TaskServiceImpl) CreateTask(
	ctx context.Context,
	callerEmail, ownerEmail string,
	payload bson.M,
) (string, error) {
	if err := s.authorize(callerEmail, ownerEmail); err != nil {
		return "", err
	}

	if status, present := payload[domain.FieldStatus]; present {
		str, ok := status.(string)
		if !ok || !domain.Status(str).IsValid() {
			return "", domain.ErrInvalidStatus
		}
	}

	doc := bson.M{}
	for k, v := range payload {
		doc[k] = v
	}
	// Ownership comes from the verified identity, never the request body.
	doc[domain.FieldAuthor] = bson.M{domain.FieldEmail: ownerEmail}

	id, err := s.taskStore.Create(ctx, doc)
	if err != nil {
		s.logger.Error("failed to create task", "error", err, "owner", ownerEmail)
		return "", fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("task created", "task_id", id, "owner", ownerEmail)

	return id, nil
}

// UpdateTask implements TaskService.
func (s *TaskServiceImpl) UpdateTask(
	ctx context.Context,
	callerEmail, ownerEmail, taskID string,
	payload bson.M,
) (*UpdateResult, error) {
	if err := s.authorize(callerEmail, ownerEmail); err != nil {
		return nil, err
	}

	if status, present := payload[domain.FieldStatus]; present {
		str, ok := status.(string)
		if !ok || !domain.Status(str).IsValid() {
			return nil, domain.ErrInvalidStatus
		}
	}

	fields := bson.M{}
	for k, v := range payload {
		fields[k] = v
	}
	// The ID and the ownership fields are immutable through updates.
	delete(fields, domain.FieldID)
	delete(fields, domain.FieldAuthor)
	delete(fields, domain.FieldAuthorEmail)

	matched, modified, err := s.taskStore.Update(ctx, taskID, ownerEmail, fields)
	if err != nil {
		s.logger.Error("failed to update task", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &UpdateResult{MatchedCount: matched, ModifiedCount: modified}, nil
}

// DeleteTask implements TaskService.
func (s *TaskServiceImpl) DeleteTask(
	ctx context.Context,
	callerEmail, ownerEmail, taskID string,
) (int64, error) {
	if err := s.authorize(callerEmail, ownerEmail); err != nil {
		return 0, err
	}

	deleted, err := s.taskStore.Delete(ctx, taskID, ownerEmail)
	if err != nil {
		s.logger.Error("failed to delete task", "error", err, "task_id", taskID)
		return 0, fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Debug("task delete finished",
		"task_id", taskID,
		"owner", ownerEmail,
		"deleted", deleted)

	return deleted, nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/store"
)

// StatsService provides owner-scoped aggregate counts by task status.
type StatsService interface {
	// Summary counts the owner's tasks partitioned by the three known
	// statuses. Tasks with an unrecognized status are excluded from every
	// bucket, silently.
	Summary(ctx context.Context, callerEmail, ownerEmail string) (*domain.StatusSummary, error)
}

// StatsServiceImpl implements the StatsService interface.
type StatsServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewStatsService creates a new StatsService.
func NewStatsService(taskStore store.TaskStore, logger *slog.Logger) StatsService {
	return &StatsServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "stats_service"),
	}
}

// Summary implements StatsService.
func (s *StatsServiceImpl) Summary(
	ctx context.Context,
	callerEmail, ownerEmail string,
) (*domain.StatusSummary, error) {
	if callerEmail == "" || callerEmail != ownerEmail {
		s.logger.Warn("owner mismatch",
			"caller_email", callerEmail,
			"requested_owner", ownerEmail)
		return nil, ErrForbidden
	}

	summary := &domain.StatusSummary{}
	for _, status := range domain.Statuses {
		count, err := s.taskStore.CountByOwnerAndStatus(ctx, ownerEmail, status)
		if err != nil {
			s.logger.Error("failed to count tasks by status",
				"error", err,
				"owner", ownerEmail,
				"status", string(status))
			return nil, fmt.Errorf("failed to count %q tasks: %w", status, err)
		}

		switch status {
		case domain.StatusToDo:
			summary.ToDo = count
		case domain.StatusOngoing:
			summary.Ongoing = count
		case domain.StatusCompleted:
			summary.Completed = count
		}
	}

	return summary, nil
}

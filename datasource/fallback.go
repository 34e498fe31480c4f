package datasource

import (
	"context"

	"go.uber.org/zap"

	"gemrock-store/models"
)

// FallbackSource reads from primary and substitutes the fallback when a list call
// fails. Every substitution is logged. Writes only go to primary.
type FallbackSource struct {
	primary  AdminDataSource
	fallback AdminDataSource
	logger   *zap.SugaredLogger
}

// NewFallbackSource creates a new FallbackSource
func NewFallbackSource(primary, fallback AdminDataSource, logger *zap.SugaredLogger) *FallbackSource {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &FallbackSource{primary: primary, fallback: fallback, logger: logger}
}

// Ensure FallbackSource implements AdminDataSource
var _ AdminDataSource = (*FallbackSource)(nil)

// Name identifies the source in overview stats
func (s *FallbackSource) Name() string {
	return s.primary.Name() + "-fallback"
}

// ListJobs lists jobs from primary, or the fallback on error
func (s *FallbackSource) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.primary.ListJobs(ctx)
	if err == nil {
		return jobs, nil
	}
	s.warn("jobs", err)
	return s.fallback.ListJobs(ctx)
}

// CreateJob creates the job on primary
func (s *FallbackSource) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	return s.primary.CreateJob(ctx, req)
}

// DeleteJob deletes the job on primary
func (s *FallbackSource) DeleteJob(ctx context.Context, id string) error {
	return s.primary.DeleteJob(ctx, id)
}

// ListUsers lists users from primary, or the fallback on error
func (s *FallbackSource) ListUsers(ctx context.Context) ([]models.DashboardUser, error) {
	users, err := s.primary.ListUsers(ctx)
	if err == nil {
		return users, nil
	}
	s.warn("users", err)
	return s.fallback.ListUsers(ctx)
}

// RegisterUser registers the user on primary
func (s *FallbackSource) RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*models.DashboardUser, error) {
	return s.primary.RegisterUser(ctx, req)
}

// ListReports lists reports from primary, or the fallback on error
func (s *FallbackSource) ListReports(ctx context.Context) ([]models.Report, error) {
	reports, err := s.primary.ListReports(ctx)
	if err == nil {
		return reports, nil
	}
	s.warn("reports", err)
	return s.fallback.ListReports(ctx)
}

func (s *FallbackSource) warn(resource string, err error) {
	s.logger.Warnw("⚠️ Serving sample data after live request failed",
		"resource", resource,
		"source", s.fallback.Name(),
		"error", err,
	)
}

package datasource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"gemrock-store/apiclient"
	"gemrock-store/models"
)

// LiveSource reads and writes admin data through the remote API
type LiveSource struct {
	client *apiclient.Client
}

// NewLiveSource creates a new LiveSource
func NewLiveSource(client *apiclient.Client) *LiveSource {
	return &LiveSource{client: client}
}

// Ensure LiveSource implements AdminDataSource
var _ AdminDataSource = (*LiveSource)(nil)

// Name identifies the source in overview stats
func (s *LiveSource) Name() string {
	return "live"
}

// ListJobs calls GET /jobs
func (s *LiveSource) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.client.Get(ctx, "/jobs", &jobs); err != nil {
		return nil, unavailable(err)
	}
	return jobs, nil
}

// CreateJob calls POST /jobs
func (s *LiveSource) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	var job models.Job
	if err := s.client.Post(ctx, "/jobs", req, &job); err != nil {
		return nil, unavailable(err)
	}
	return &job, nil
}

// DeleteJob calls DELETE /jobs/{id}
func (s *LiveSource) DeleteJob(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/jobs/"+url.PathEscape(id)); err != nil {
		return unavailable(err)
	}
	return nil
}

// ListUsers calls GET /users
func (s *LiveSource) ListUsers(ctx context.Context) ([]models.DashboardUser, error) {
	var users []models.DashboardUser
	if err := s.client.Get(ctx, "/users", &users); err != nil {
		return nil, unavailable(err)
	}
	return users, nil
}

// RegisterUser calls POST /auth/register
func (s *LiveSource) RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*models.DashboardUser, error) {
	var user models.DashboardUser
	if err := s.client.Post(ctx, "/auth/register", req, &user); err != nil {
		return nil, unavailable(err)
	}
	return &user, nil
}

// ListReports calls GET /reports
func (s *LiveSource) ListReports(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := s.client.Get(ctx, "/reports", &reports); err != nil {
		return nil, unavailable(err)
	}
	return reports, nil
}

func unavailable(err error) error {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

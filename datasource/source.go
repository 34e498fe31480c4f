package datasource

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gemrock-store/apiclient"
	"gemrock-store/config"
	"gemrock-store/models"
)

// ErrUnavailable is returned when the remote API cannot serve a request
var ErrUnavailable = errors.New("data source unavailable")

// ErrNotFound is returned when deleting an unknown record
var ErrNotFound = errors.New("record not found")

// ErrInvalidInput is returned when a write request fails validation
var ErrInvalidInput = errors.New("invalid input")

// AdminDataSource provides the jobs, users and reports of the admin dashboard
type AdminDataSource interface {
	Name() string
	ListJobs(ctx context.Context) ([]models.Job, error)
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]models.DashboardUser, error)
	RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*models.DashboardUser, error)
	ListReports(ctx context.Context) ([]models.Report, error)
}

// New selects the data source for a DATA_SOURCE mode
func New(mode string, client *apiclient.Client, logger *zap.SugaredLogger) (AdminDataSource, error) {
	switch mode {
	case config.DataSourceStub:
		return NewStubSource(), nil
	case config.DataSourceLive:
		return NewLiveSource(client), nil
	case config.DataSourceLiveFallback:
		return NewFallbackSource(NewLiveSource(client), NewStubSource(), logger), nil
	default:
		return nil, fmt.Errorf("unknown data source %q", mode)
	}
}

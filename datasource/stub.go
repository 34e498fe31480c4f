package datasource

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gemrock-store/models"
)

// StubSource serves the built-in sample data and keeps writes in memory
type StubSource struct {
	mu      sync.RWMutex
	jobs    []models.Job
	users   []models.DashboardUser
	reports []models.Report
	now     func() time.Time
}

// NewStubSource creates a StubSource seeded with the sample dashboard data
func NewStubSource() *StubSource {
	return newStubSource(time.Now)
}

func newStubSource(now func() time.Time) *StubSource {
	created := now().UTC().Format(time.RFC3339)
	return &StubSource{
		jobs:    sampleJobs(created),
		users:   sampleUsers(created),
		reports: sampleReports(created),
		now:     now,
	}
}

// Ensure StubSource implements AdminDataSource
var _ AdminDataSource = (*StubSource)(nil)

// Name identifies the source in overview stats
func (s *StubSource) Name() string {
	return "stub"
}

// ListJobs returns the in-memory jobs
func (s *StubSource) ListJobs(ctx context.Context) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Job(nil), s.jobs...), nil
}

// CreateJob appends a job with a generated id. New jobs are open unless a status is given.
func (s *StubSource) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status == "" {
		status = "open"
	}

	job := models.Job{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Salary:      req.Salary,
		Status:      status,
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
	return &job, nil
}

// DeleteJob removes a job by id
func (s *StubSource) DeleteJob(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, job := range s.jobs {
		if job.ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("job %s: %w", id, ErrNotFound)
}

// ListUsers returns the in-memory users
func (s *StubSource) ListUsers(ctx context.Context) ([]models.DashboardUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.DashboardUser(nil), s.users...), nil
}

// RegisterUser appends a user. The password is accepted and discarded.
func (s *StubSource) RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*models.DashboardUser, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	user := models.DashboardUser{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Role:      role,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	return &user, nil
}

// ListReports returns the sample reports
func (s *StubSource) ListReports(ctx context.Context) ([]models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Report(nil), s.reports...), nil
}

func sampleJobs(created string) []models.Job {
	return []models.Job{
		{
			ID:          "1",
			Title:       "Senior Tax Consultant",
			Company:     "Gemrock Global",
			Location:    "London, UK / Remote",
			Status:      "open",
			Description: "Looking for an experienced tax consultant to lead our royalty data analysis team.",
			Salary:      "$90k - $120k",
			CreatedAt:   created,
		},
		{
			ID:          "2",
			Title:       "Royalty Data Analyst",
			Company:     "Gemrock Global",
			Location:    "New York, USA",
			Status:      "open",
			Description: "Help us manage and analyze complex royalty data for international clients.",
			Salary:      "$70k - $95k",
			CreatedAt:   created,
		},
		{
			ID:          "3",
			Title:       "Compliance Officer",
			Company:     "Gemrock Global",
			Location:    "Remote",
			Status:      "pending",
			Description: "Ensure all our data processes comply with global tax regulations.",
			Salary:      "$65k - $80k",
			CreatedAt:   created,
		},
	}
}

func sampleUsers(created string) []models.DashboardUser {
	return []models.DashboardUser{
		{ID: "1", Name: "John Doe", Email: "john@gemrock.tax", Role: models.RoleAdmin, CreatedAt: created},
		{ID: "2", Name: "Sarah Wilson", Email: "sarah@gemrock.tax", Role: models.RoleUser, CreatedAt: created},
		{ID: "3", Name: "Michael Chen", Email: "michael@gemrock.tax", Role: models.RoleUser, CreatedAt: created},
		{ID: "4", Name: "Emma Thompson", Email: "emma@gemrock.tax", Role: models.RoleAdmin, CreatedAt: created},
	}
}

func sampleReports(created string) []models.Report {
	return []models.Report{
		{
			ID:          "1",
			Title:       "2025 Global Royalty Rate Analysis",
			Category:    "Royalty Data",
			Country:     "Global",
			Status:      "published",
			Description: "Comprehensive analysis of royalty rates across multiple industries for 2025.",
			Author:      "Senior Tax Expert",
			CreatedAt:   created,
		},
		{
			ID:          "2",
			Title:       "EU Corporate Tax Compliance Guide",
			Category:    "Tax Law",
			Country:     "European Union",
			Status:      "published",
			Description: "A deep dive into the latest EU corporate tax regulations and compliance strategies.",
			Author:      "Compliance Lead",
			CreatedAt:   created,
		},
		{
			ID:          "3",
			Title:       "Mining Sector Royalty Framework - Africa",
			Category:    "Mining",
			Country:     "South Africa",
			Status:      "draft",
			Description: "Drafting the new framework for mining royalties in Southern Africa.",
			Author:      "Industry Analyst",
			CreatedAt:   created,
		},
	}
}

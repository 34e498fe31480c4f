package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"gemrock-store/datasource"
	"gemrock-store/models"
	"gemrock-store/repository"
)

// ReportService serves dashboard reports. The list is read once from the data
// source; creates and deletes stay local and never reach the network.
type ReportService struct {
	source datasource.AdminDataSource
	repo   repository.ReportRepositoryInterface
	logger *zap.SugaredLogger

	mu     sync.Mutex
	seeded bool
}

// NewReportService creates a new ReportService
func NewReportService(source datasource.AdminDataSource, repo repository.ReportRepositoryInterface, logger *zap.SugaredLogger) *ReportService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ReportService{source: source, repo: repo, logger: logger}
}

// List returns the local report list, seeding it from the data source on first use
func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	if err := s.seed(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Create adds a report locally
func (s *ReportService) Create(ctx context.Context, req *models.CreateReportRequest) (*models.Report, error) {
	if err := s.seed(ctx); err != nil {
		return nil, err
	}
	report, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Infof("✅ Report created locally: id=%s title=%q", report.ID, report.Title)
	return report, nil
}

// Delete removes a report locally
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.seed(ctx); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infof("✅ Report deleted locally: id=%s", id)
	return nil
}

func (s *ReportService) seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeded {
		return nil
	}

	reports, err := s.source.ListReports(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}
	s.repo.Seed(reports)
	s.seeded = true
	s.logger.Infof("🔍 Seeded %d reports from %s source", len(reports), s.source.Name())
	return nil
}

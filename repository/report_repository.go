package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gemrock-store/models"
)

// ErrReportNotFound is returned when deleting an unknown report
var ErrReportNotFound = errors.New("report not found")

// ErrInvalidReport is returned when a report request fails validation
var ErrInvalidReport = errors.New("invalid report")

// ReportRepository keeps dashboard reports in memory. Report writes never reach
// the remote API.
type ReportRepository struct {
	mu      sync.RWMutex
	reports []models.Report
	now     func() time.Time
}

// NewReportRepository creates a new empty ReportRepository
func NewReportRepository() *ReportRepository {
	return &ReportRepository{now: time.Now}
}

// Ensure ReportRepository implements ReportRepositoryInterface
var _ ReportRepositoryInterface = (*ReportRepository)(nil)

// Seed replaces the stored reports
func (r *ReportRepository) Seed(reports []models.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append([]models.Report(nil), reports...)
}

// List returns the stored reports, newest first
func (r *ReportRepository) List(ctx context.Context) ([]models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Report, len(r.reports))
	copy(out, r.reports)
	return out, nil
}

// Create adds a report at the top of the list
func (r *ReportRepository) Create(ctx context.Context, req *models.CreateReportRequest) (*models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidReport)
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status == "" {
		status = "draft"
	}
	if status != "draft" && status != "published" {
		return nil, fmt.Errorf("%w: status %q, use draft or published", ErrInvalidReport, req.Status)
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "Royalty Data"
	}

	report := models.Report{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Category:    category,
		Country:     req.Country,
		Status:      status,
		Description: req.Description,
		Author:      req.Author,
		CreatedAt:   r.now().UTC().Format("2006-01-02"),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append([]models.Report{report}, r.reports...)
	return &report, nil
}

// Delete removes a report by id
func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, report := range r.reports {
		if report.ID == id {
			r.reports = append(r.reports[:i], r.reports[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("report %s: %w", id, ErrReportNotFound)
}

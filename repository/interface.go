package repository

import (
	"context"

	"gemrock-store/models"
)

// SessionRepositoryInterface defines the contract for persisted session records
type SessionRepositoryInterface interface {
	Save(ctx context.Context, key string, record models.SessionRecord) error
	Load(ctx context.Context, key string) (*models.SessionRecord, error)
	Delete(ctx context.Context, key string) error
}

// ReportRepositoryInterface defines the contract for locally managed reports
type ReportRepositoryInterface interface {
	Seed(reports []models.Report)
	List(ctx context.Context) ([]models.Report, error)
	Create(ctx context.Context, req *models.CreateReportRequest) (*models.Report, error)
	Delete(ctx context.Context, id string) error
}

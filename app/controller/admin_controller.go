package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gemrock-store/datasource"
	"gemrock-store/models"
	"gemrock-store/repository"
	"gemrock-store/service"
)

// AdminController handles HTTP requests for the admin dashboard
type AdminController struct {
	source  datasource.AdminDataSource
	reports *service.ReportService
	logger  *zap.SugaredLogger
}

// NewAdminController creates a new AdminController
func NewAdminController(source datasource.AdminDataSource, reports *service.ReportService, logger *zap.SugaredLogger) *AdminController {
	return &AdminController{source: source, reports: reports, logger: logger}
}

// Overview handles GET /admin/overview
// Counts users, admins (shown as tax experts) and reports from the active source
func (c *AdminController) Overview(w http.ResponseWriter, r *http.Request) {
	users, err := c.source.ListUsers(r.Context())
	if err != nil {
		c.handleError(w, "Overview", err)
		return
	}
	reports, err := c.reports.List(r.Context())
	if err != nil {
		c.handleError(w, "Overview", err)
		return
	}

	experts := 0
	for _, u := range users {
		if u.Role == models.RoleAdmin {
			experts++
		}
	}

	writeJSON(w, c.logger, http.StatusOK, models.OverviewStats{
		TotalUsers:   len(users),
		TaxExperts:   experts,
		TotalReports: len(reports),
		DataSource:   c.source.Name(),
	})
}

// ListJobs handles GET /admin/jobs
func (c *AdminController) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := c.source.ListJobs(r.Context())
	if err != nil {
		c.handleError(w, "ListJobs", err)
		return
	}
	writeJSON(w, c.logger, http.StatusOK, jobs)
}

// CreateJob handles POST /admin/jobs
// Example request body: {"title": "Compliance Officer", "company": "Gemrock Global", "location": "Remote", "salary": "$65k - $80k"}
func (c *AdminController) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJobRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON format", err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "title is required", "")
		return
	}

	job, err := c.source.CreateJob(r.Context(), &req)
	if err != nil {
		c.handleError(w, "CreateJob", err)
		return
	}
	c.logger.Infof("✅ CreateJob: id=%s title=%q", job.ID, job.Title)
	writeJSON(w, c.logger, http.StatusCreated, job)
}

// DeleteJob handles DELETE /admin/jobs/{id}
func (c *AdminController) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := c.source.DeleteJob(r.Context(), id); err != nil {
		c.handleError(w, "DeleteJob", err)
		return
	}
	c.logger.Infof("✅ DeleteJob: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

// ListUsers handles GET /admin/users
func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.source.ListUsers(r.Context())
	if err != nil {
		c.handleError(w, "ListUsers", err)
		return
	}
	writeJSON(w, c.logger, http.StatusOK, users)
}

// RegisterUser handles POST /admin/users
// Example request body: {"name": "Sarah Wilson", "email": "sarah@gemrock.tax", "password": "secret", "role": "user"}
func (c *AdminController) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON format", err.Error())
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Name) == "" {
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "name and email are required", "")
		return
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}

	user, err := c.source.RegisterUser(r.Context(), &req)
	if err != nil {
		c.handleError(w, "RegisterUser", err)
		return
	}
	c.logger.Infof("✅ RegisterUser: id=%s email=%s role=%s", user.ID, user.Email, user.Role)
	writeJSON(w, c.logger, http.StatusCreated, user)
}

// ListReports handles GET /admin/reports
func (c *AdminController) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := c.reports.List(r.Context())
	if err != nil {
		c.handleError(w, "ListReports", err)
		return
	}
	writeJSON(w, c.logger, http.StatusOK, reports)
}

// CreateReport handles POST /admin/reports
// Reports are kept locally; nothing is sent to the remote API.
func (c *AdminController) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReportRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON format", err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "title is required", "")
		return
	}

	report, err := c.reports.Create(r.Context(), &req)
	if err != nil {
		c.handleError(w, "CreateReport", err)
		return
	}
	writeJSON(w, c.logger, http.StatusCreated, report)
}

// DeleteReport handles DELETE /admin/reports/{id}
func (c *AdminController) DeleteReport(w http.ResponseWriter, r *http.Request) {
	if err := c.reports.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		c.handleError(w, "DeleteReport", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *AdminController) handleError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, datasource.ErrNotFound), errors.Is(err, repository.ErrReportNotFound):
		c.logger.Warnf("⚠️ %s: %v", op, err)
		sendError(w, http.StatusNotFound, "NOT_FOUND", "Record not found", err.Error())
	case errors.Is(err, datasource.ErrInvalidInput), errors.Is(err, repository.ErrInvalidReport):
		c.logger.Warnf("⚠️ %s: rejected: %v", op, err)
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", op+" rejected", err.Error())
	case errors.Is(err, datasource.ErrUnavailable):
		c.logger.Errorf("❌ %s: %v", op, err)
		sendError(w, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Admin data source unavailable", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		sendError(w, http.StatusServiceUnavailable, "CANCELLED", op+" was interrupted", err.Error())
	default:
		c.logger.Errorf("❌ %s: %v", op, err)
		sendError(w, http.StatusInternalServerError, "INTERNAL", op+" failed", err.Error())
	}
}

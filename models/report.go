package models

// Report represents a tax or royalty report in the admin dashboard
type Report struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	Status      string `json:"status"` // "draft" or "published"
	Description string `json:"description"`
	Author      string `json:"author"`
	CreatedAt   string `json:"createdAt"`
}

// CreateReportRequest represents the request body for creating a report
// Example: {"title": "2025 Global Royalty Rate Analysis", "category": "Royalty Data", "country": "Global", "status": "draft", "description": "...", "author": "Senior Tax Expert"}
type CreateReportRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Author      string `json:"author"`
}

// OverviewStats represents the counters shown on the dashboard overview
type OverviewStats struct {
	TotalUsers   int    `json:"totalUsers"`
	TaxExperts   int    `json:"taxExperts"`
	TotalReports int    `json:"totalReports"`
	DataSource   string `json:"dataSource"`
}

package models

// Job represents a job listing managed from the admin dashboard
type Job struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// CreateJobRequest represents the request body for creating a job
// Example: {"title": "Royalty Data Analyst", "company": "Gemrock Global", "location": "Remote", "description": "...", "salary": "$70k - $95k"}
type CreateJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	Status      string `json:"status,omitempty"`
}

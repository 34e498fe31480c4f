package models

// DashboardUser represents a user listed in the admin dashboard
type DashboardUser struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"` // "user" or "admin"
	CreatedAt string `json:"createdAt"`
}

// RegisterUserRequest represents the request body for registering a user from the dashboard
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

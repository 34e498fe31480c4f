package models

// Role values assigned by the credential policy
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

// SessionRecord represents the persisted "logged in" state of a client
type SessionRecord struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	Role            string `json:"role"`
	Token           string `json:"token,omitempty"`
}

// LoginRequest represents the request body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest represents the request body for POST /auth/signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse represents the response for auth endpoints
type SessionResponse struct {
	Success bool           `json:"success"`
	User    *SessionRecord `json:"user"`
}

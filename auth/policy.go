package auth

import (
	"gemrock-store/config"
	"gemrock-store/models"
)

// Credential maps one email/password pair to a role
type Credential struct {
	Email    string
	Password string
	Role     string
}

// Policy is an ordered credential table. The first matching entry wins.
type Policy struct {
	credentials []Credential
}

// NewPolicy creates a Policy from an ordered credential list
func NewPolicy(credentials ...Credential) *Policy {
	return &Policy{credentials: append([]Credential(nil), credentials...)}
}

// PolicyFromConfig builds the superadmin and admin entries from configuration
func PolicyFromConfig(cfg config.Config) *Policy {
	return NewPolicy(
		Credential{Email: cfg.SuperAdminEmail, Password: cfg.SuperAdminPassword, Role: models.RoleSuperAdmin},
		Credential{Email: cfg.AdminEmail, Password: cfg.AdminPassword, Role: models.RoleAdmin},
	)
}

// RoleFor returns the role of the first matching credential, or the user role.
// Email and password both compare exactly.
func (p *Policy) RoleFor(email, password string) string {
	for _, c := range p.credentials {
		if c.Email == "" {
			continue
		}
		if c.Email == email && c.Password == password {
			return c.Role
		}
	}
	return models.RoleUser
}

// IsAdmin reports whether the role may use the admin area
func IsAdmin(role string) bool {
	return role == models.RoleAdmin || role == models.RoleSuperAdmin
}

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type claimsKey struct{}

// Gate checks bearer tokens against the live session of their profile, so a
// token stops working once its profile logs out.
type Gate struct {
	sessions *Sessions
	logger   *zap.SugaredLogger
}

// NewGate creates a new Gate
func NewGate(sessions *Sessions, logger *zap.SugaredLogger) *Gate {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Gate{sessions: sessions, logger: logger}
}

// Authenticate resolves the claims of the request's bearer token
func (g *Gate) Authenticate(r *http.Request) (*Claims, error) {
	token := BearerToken(r)
	claims, err := g.sessions.Tokens().Parse(token)
	if err != nil {
		return nil, err
	}

	current := g.sessions.Manager(r.Context(), claims.Profile).Current()
	if current == nil || current.Token != token {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}

// RequireAuthenticated lets any signed-in role through
func (g *Gate) RequireAuthenticated(next http.Handler) http.Handler {
	return g.RequireRole()(next)
}

// RequireRole lets through sessions holding one of roles. No roles means any role.
func (g *Gate) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := g.Authenticate(r)
			if err != nil {
				g.logger.Warnf("⚠️ %s %s rejected: %v", r.Method, r.URL.Path, err)
				writeError(w, http.StatusUnauthorized, "unauthorized", "Sign in to continue")
				return
			}
			if len(roles) > 0 && !hasRole(claims.Role, roles) {
				g.logger.Warnf("⚠️ %s %s forbidden for role %s", r.Method, r.URL.Path, claims.Role)
				writeError(w, http.StatusForbidden, "forbidden", ErrForbidden.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}

// ClaimsFromContext returns the claims stored by the gate
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok
}

// BearerToken extracts the token from the Authorization header
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

func hasRole(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code, "message": message})
}

package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"gemrock-store/auth"
	"gemrock-store/models"
)

// AuthController handles HTTP requests for the simulated login session
type AuthController struct {
	sessions *auth.Sessions
	logger   *zap.SugaredLogger
}

// NewAuthController creates a new AuthController
func NewAuthController(sessions *auth.Sessions, logger *zap.SugaredLogger) *AuthController {
	return &AuthController{sessions: sessions, logger: logger}
}

// Login handles POST /auth/login
// Example request body: {"email": "admin@gmail.com", "password": "123456"}
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON format", err.Error())
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "email is required", "")
		return
	}

	profile := r.Header.Get(SessionHeader)
	record, err := c.sessions.Manager(r.Context(), profile).Login(r.Context(), req.Email, req.Password)
	if err != nil {
		c.handleError(w, "Login", err)
		return
	}
	writeJSON(w, c.logger, http.StatusOK, models.SessionResponse{Success: true, User: record})
}

// Signup handles POST /auth/signup
// Example request body: {"name": "Jane Doe", "email": "jane@example.com", "password": "secret"}
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON format", err.Error())
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "email is required", "")
		return
	}

	profile := r.Header.Get(SessionHeader)
	record, err := c.sessions.Manager(r.Context(), profile).Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		c.handleError(w, "Signup", err)
		return
	}
	writeJSON(w, c.logger, http.StatusCreated, models.SessionResponse{Success: true, User: record})
}

// Logout handles POST /auth/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	profile := r.Header.Get(SessionHeader)
	if err := c.sessions.Manager(r.Context(), profile).Logout(r.Context()); err != nil {
		c.handleError(w, "Logout", err)
		return
	}
	writeJSON(w, c.logger, http.StatusOK, models.SessionResponse{Success: true})
}

// Account handles GET /account (gated)
// Returns the session record behind the bearer token
func (c *AuthController) Account(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "unauthorized", auth.ErrUnauthenticated.Error(), "")
		return
	}

	record := c.sessions.Manager(r.Context(), claims.Profile).Current()
	if record == nil {
		sendError(w, http.StatusUnauthorized, "unauthorized", auth.ErrUnauthenticated.Error(), "")
		return
	}
	writeJSON(w, c.logger, http.StatusOK, models.SessionResponse{Success: true, User: record})
}

func (c *AuthController) handleError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		sendError(w, http.StatusServiceUnavailable, "CANCELLED", op+" was interrupted", err.Error())
		return
	}
	c.logger.Errorf("❌ %s: %v", op, err)
	sendError(w, http.StatusInternalServerError, "INTERNAL", op+" failed", err.Error())
}

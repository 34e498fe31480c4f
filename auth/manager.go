package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"gemrock-store/models"
	"gemrock-store/repository"
)

// Manager owns the session of one client profile. The record is kept in memory
// and mirrored to the session repository under a fixed key.
type Manager struct {
	mu      sync.RWMutex
	profile string
	key     string
	policy  *Policy
	tokens  *Tokens
	store   repository.SessionRepositoryInterface
	delay   time.Duration
	logger  *zap.SugaredLogger
	current *models.SessionRecord
}

// NewManager creates a Manager for a profile persisting under key
func NewManager(profile, key string, policy *Policy, tokens *Tokens, store repository.SessionRepositoryInterface, delay time.Duration, logger *zap.SugaredLogger) *Manager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Manager{
		profile: profile,
		key:     key,
		policy:  policy,
		tokens:  tokens,
		store:   store,
		delay:   delay,
		logger:  logger,
	}
}

// Login waits out the simulated delay and signs in with the role the policy assigns.
// It succeeds for any email and password.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.SessionRecord, error) {
	if err := wait(ctx, m.delay); err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)
	role := m.policy.RoleFor(email, password)
	record := models.SessionRecord{
		ID:              idForRole(role),
		Email:           email,
		Name:            localPart(email),
		IsAuthenticated: true,
		Role:            role,
	}

	if err := m.establish(ctx, record); err != nil {
		return nil, err
	}
	m.logger.Infof("✅ Login: %s signed in as %s", email, role)
	return m.Current(), nil
}

// Signup waits out the simulated delay and signs in a new user-role session
func (m *Manager) Signup(ctx context.Context, name, email, password string) (*models.SessionRecord, error) {
	if err := wait(ctx, m.delay); err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if name == "" {
		name = localPart(email)
	}
	record := models.SessionRecord{
		ID:              "1",
		Email:           email,
		Name:            name,
		IsAuthenticated: true,
		Role:            models.RoleUser,
	}

	if err := m.establish(ctx, record); err != nil {
		return nil, err
	}
	m.logger.Infof("✅ Signup: %s registered", email)
	return m.Current(), nil
}

// Logout clears the in-memory and persisted session
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Delete(ctx, m.key); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	m.logger.Infof("✅ Logout: session %q cleared", m.key)
	return nil
}

// Current returns a copy of the active session record, or nil when signed out
func (m *Manager) Current() *models.SessionRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	record := *m.current
	return &record
}

// Restore rehydrates the session from the repository. A missing or unreadable
// record leaves the manager signed out.
func (m *Manager) Restore(ctx context.Context) error {
	record, err := m.store.Load(ctx, m.key)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		m.logger.Warnf("⚠️ Restore: could not load session %q: %v", m.key, err)
		return fmt.Errorf("failed to restore session: %w", err)
	}

	m.mu.Lock()
	m.current = record
	m.mu.Unlock()
	m.logger.Debugf("🔍 Restore: session %q restored for %s", m.key, record.Email)
	return nil
}

func (m *Manager) establish(ctx context.Context, record models.SessionRecord) error {
	token, err := m.tokens.Issue(m.profile, record)
	if err != nil {
		return err
	}
	record.Token = token

	if err := m.store.Save(ctx, m.key, record); err != nil {
		m.logger.Errorf("❌ Failed to persist session %q: %v", m.key, err)
		return fmt.Errorf("failed to persist session: %w", err)
	}

	m.mu.Lock()
	m.current = &record
	m.mu.Unlock()
	return nil
}

func idForRole(role string) string {
	switch role {
	case models.RoleSuperAdmin:
		return "superadmin"
	case models.RoleAdmin:
		return "admin"
	default:
		return "1"
	}
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package auth

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"gemrock-store/repository"
)

// MaxProfiles bounds the managers held in memory. An evicted profile is
// restored from the session store on its next request.
const MaxProfiles = 1024

// Sessions hands out one Manager per client profile. The default profile ("")
// persists under the base key; other profiles persist under "<base>:<profile>".
type Sessions struct {
	baseKey  string
	policy   *Policy
	tokens   *Tokens
	store    repository.SessionRepositoryInterface
	delay    time.Duration
	logger   *zap.SugaredLogger
	managers *lru.Cache
	restores singleflight.Group
}

// NewSessions creates a new Sessions registry
func NewSessions(baseKey string, policy *Policy, tokens *Tokens, store repository.SessionRepositoryInterface, delay time.Duration, logger *zap.SugaredLogger) *Sessions {
	return newBoundedSessions(baseKey, policy, tokens, store, delay, logger, MaxProfiles)
}

func newBoundedSessions(baseKey string, policy *Policy, tokens *Tokens, store repository.SessionRepositoryInterface, delay time.Duration, logger *zap.SugaredLogger, capacity int) *Sessions {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if capacity < 1 {
		capacity = MaxProfiles
	}
	// lru.New only fails for a non-positive size
	managers, _ := lru.New(capacity)
	return &Sessions{
		baseKey:  baseKey,
		policy:   policy,
		tokens:   tokens,
		store:    store,
		delay:    delay,
		logger:   logger,
		managers: managers,
	}
}

// Manager returns the manager of a profile, restoring its persisted session on first use.
// Concurrent first requests of a profile share one restore.
func (s *Sessions) Manager(ctx context.Context, profile string) *Manager {
	if m, ok := s.managers.Get(profile); ok {
		return m.(*Manager)
	}

	v, _, _ := s.restores.Do(profile, func() (interface{}, error) {
		if m, ok := s.managers.Get(profile); ok {
			return m, nil
		}
		m := NewManager(profile, s.keyFor(profile), s.policy, s.tokens, s.store, s.delay, s.logger)
		if err := m.Restore(ctx); err != nil {
			// not cached, so the next request retries the restore
			s.logger.Warnf("⚠️ Starting profile %q signed out: %v", profile, err)
			return m, nil
		}
		s.managers.Add(profile, m)
		return m, nil
	})
	return v.(*Manager)
}

// KeyFromContext returns the session key of the profile the gate authenticated
func (s *Sessions) KeyFromContext(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return "", false
	}
	return s.keyFor(claims.Profile), true
}

// Tokens returns the token signer shared by every profile
func (s *Sessions) Tokens() *Tokens {
	return s.tokens
}

func (s *Sessions) keyFor(profile string) string {
	if profile == "" {
		return s.baseKey
	}
	return s.baseKey + ":" + profile
}

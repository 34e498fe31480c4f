package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemrock-store/config"
	"gemrock-store/db"
	"gemrock-store/models"
	"gemrock-store/repository"
)

func testConfig() config.Config {
	return config.Config{
		AdminEmail:         "admin@gmail.com",
		AdminPassword:      "123456",
		SuperAdminEmail:    "superadmin@gmail.com",
		SuperAdminPassword: "superpassword123",
	}
}

func newStore(t *testing.T) *repository.SessionRepository {
	t.Helper()
	conn, err := db.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	repo := repository.NewSessionRepository(conn, db.DialectSQLite, nil)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func newSessions(store repository.SessionRepositoryInterface) *Sessions {
	return NewSessions("user", PolicyFromConfig(testConfig()), NewTokens("test-secret", time.Hour), store, 0, nil)
}

func TestPolicyRoleFor(t *testing.T) {
	p := PolicyFromConfig(testConfig())

	assert.Equal(t, models.RoleAdmin, p.RoleFor("admin@gmail.com", "123456"))
	assert.Equal(t, models.RoleUser, p.RoleFor("ADMIN@gmail.com", "123456"))
	assert.Equal(t, models.RoleUser, p.RoleFor(" admin@gmail.com", "123456"))
	assert.Equal(t, models.RoleSuperAdmin, p.RoleFor("superadmin@gmail.com", "superpassword123"))
	assert.Equal(t, models.RoleUser, p.RoleFor("admin@gmail.com", "wrong"))
	assert.Equal(t, models.RoleUser, p.RoleFor("jane@example.com", "anything"))
	assert.Equal(t, models.RoleUser, p.RoleFor("", ""))
}

func TestPolicyFirstMatchWins(t *testing.T) {
	p := NewPolicy(
		Credential{Email: "a@x.com", Password: "pw", Role: models.RoleSuperAdmin},
		Credential{Email: "a@x.com", Password: "pw", Role: models.RoleAdmin},
	)
	assert.Equal(t, models.RoleSuperAdmin, p.RoleFor("a@x.com", "pw"))
}

func TestLoginRolesPersistAcrossReload(t *testing.T) {
	tests := []struct {
		email    string
		password string
		role     string
		id       string
	}{
		{"admin@gmail.com", "123456", models.RoleAdmin, "admin"},
		{"superadmin@gmail.com", "superpassword123", models.RoleSuperAdmin, "superadmin"},
		{"jane@example.com", "hunter2", models.RoleUser, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			record, err := newSessions(store).Manager(ctx, "").Login(ctx, tt.email, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.role, record.Role)
			assert.Equal(t, tt.id, record.ID)
			assert.True(t, record.IsAuthenticated)
			assert.NotEmpty(t, record.Token)

			// a fresh registry over the same store simulates a reload
			restored := newSessions(store).Manager(ctx, "").Current()
			require.NotNil(t, restored)
			assert.Equal(t, *record, *restored)
		})
	}
}

func TestLoginNameIsEmailLocalPart(t *testing.T) {
	ctx := context.Background()
	record, err := newSessions(newStore(t)).Manager(ctx, "").Login(ctx, "jane.doe@example.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", record.Name)
}

func TestLoginEmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	record, err := newSessions(newStore(t)).Manager(ctx, "").Login(ctx, "ADMIN@gmail.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, record.Role)
	assert.Equal(t, "1", record.ID)
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	m := newSessions(newStore(t)).Manager(ctx, "")

	record, err := m.Signup(ctx, "Jane Doe", "jane@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "1", record.ID)
	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, models.RoleUser, record.Role)
}

func TestLogoutClearsMemoryAndStore(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	m := newSessions(store).Manager(ctx, "")

	_, err := m.Login(ctx, "admin@gmail.com", "123456")
	require.NoError(t, err)
	require.NoError(t, m.Logout(ctx))

	assert.Nil(t, m.Current())
	_, err = store.Load(ctx, "user")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	assert.Nil(t, newSessions(store).Manager(ctx, "").Current())
}

func TestProfilesAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	sessions := newSessions(store)

	_, err := sessions.Manager(ctx, "tab-a").Login(ctx, "admin@gmail.com", "123456")
	require.NoError(t, err)

	assert.Nil(t, sessions.Manager(ctx, "tab-b").Current())
	_, err = store.Load(ctx, "user:tab-a")
	assert.NoError(t, err)
}

type countingStore struct {
	repository.SessionRepositoryInterface
	loads atomic.Int32
}

func (c *countingStore) Load(ctx context.Context, key string) (*models.SessionRecord, error) {
	c.loads.Add(1)
	return c.SessionRepositoryInterface.Load(ctx, key)
}

func TestManagersAreBoundedAndRestoredAfterEviction(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	registry := newBoundedSessions("user", PolicyFromConfig(testConfig()), NewTokens("test-secret", time.Hour), store, 0, nil, 2)
	for _, profile := range []string{"a", "b", "c"} {
		_, err := registry.Manager(ctx, profile).Login(ctx, profile+"@example.com", "pw")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, registry.managers.Len())

	restored := registry.Manager(ctx, "a").Current()
	require.NotNil(t, restored)
	assert.Equal(t, "a@example.com", restored.Email)
	assert.Equal(t, 2, registry.managers.Len())
}

func TestConcurrentFirstUseSharesOneManager(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{SessionRepositoryInterface: newStore(t)}
	registry := newSessions(store)

	var wg sync.WaitGroup
	managers := make([]*Manager, 20)
	for i := range managers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			managers[i] = registry.Manager(ctx, "tab")
		}(i)
	}
	wg.Wait()

	for _, m := range managers {
		assert.Same(t, managers[0], m)
	}
	assert.Equal(t, int32(1), store.loads.Load())
}

func TestLoginHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sessions := NewSessions("user", PolicyFromConfig(testConfig()), NewTokens("s", time.Hour), newStore(t), time.Hour, nil)
	_, err := sessions.Manager(context.Background(), "").Login(ctx, "admin@gmail.com", "123456")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokens(t *testing.T) {
	tokens := NewTokens("secret", time.Minute)
	record := models.SessionRecord{ID: "admin", Email: "admin@gmail.com", Name: "admin", Role: models.RoleAdmin}

	signed, err := tokens.Issue("tab-a", record)
	require.NoError(t, err)

	claims, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "tab-a", claims.Profile)

	_, err = NewTokens("other", time.Minute).Parse(signed)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = tokens.Parse("")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	expired := NewTokens("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, err := expired.Issue("", record)
	require.NoError(t, err)
	_, err = tokens.Parse(old)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestGate(t *testing.T) {
	ctx := context.Background()
	sessions := newSessions(newStore(t))
	gate := NewGate(sessions, nil)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, found := ClaimsFromContext(r.Context())
		require.True(t, found)
		_, _ = w.Write([]byte(claims.Role))
	})
	adminOnly := gate.RequireRole(models.RoleAdmin, models.RoleSuperAdmin)(ok)
	anyone := gate.RequireAuthenticated(ok)

	call := func(h http.Handler, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin/overview", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, call(adminOnly, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(adminOnly, "garbage").Code)

	user, err := sessions.Manager(ctx, "u").Login(ctx, "jane@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, call(adminOnly, user.Token).Code)
	assert.Equal(t, http.StatusOK, call(anyone, user.Token).Code)

	admin, err := sessions.Manager(ctx, "a").Login(ctx, "admin@gmail.com", "123456")
	require.NoError(t, err)
	rec := call(adminOnly, admin.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleAdmin, rec.Body.String())

	require.NoError(t, sessions.Manager(ctx, "a").Logout(ctx))
	assert.Equal(t, http.StatusUnauthorized, call(adminOnly, admin.Token).Code)
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemrock-store/db"
	"gemrock-store/models"
)

func newSessionRepo(t *testing.T) *SessionRepository {
	t.Helper()
	conn, err := db.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	repo := NewSessionRepository(conn, db.DialectSQLite, nil)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newSessionRepo(t)

	_, err := repo.Load(ctx, "user")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	record := models.SessionRecord{ID: "admin", Email: "admin@gmail.com", Name: "admin", IsAuthenticated: true, Role: models.RoleAdmin}
	require.NoError(t, repo.Save(ctx, "user", record))

	loaded, err := repo.Load(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, record, *loaded)

	record.Role = models.RoleSuperAdmin
	require.NoError(t, repo.Save(ctx, "user", record))
	loaded, err = repo.Load(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, loaded.Role)

	require.NoError(t, repo.Delete(ctx, "user"))
	_, err = repo.Load(ctx, "user")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.NoError(t, repo.Delete(ctx, "user"))
}

func TestSessionRepositoryEnsureSchemaIsIdempotent(t *testing.T) {
	repo := newSessionRepo(t)
	assert.NoError(t, repo.EnsureSchema(context.Background()))
}

func TestRebind(t *testing.T) {
	pg := &SessionRepository{dialect: db.DialectPostgres}
	assert.Equal(t, "VALUES ($1, $2, $3)", pg.rebind("VALUES (?, ?, ?)"))

	lite := &SessionRepository{dialect: db.DialectSQLite}
	assert.Equal(t, "VALUES (?, ?)", lite.rebind("VALUES (?, ?)"))
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gemrock-store/db"
	"gemrock-store/models"
)

// ErrSessionNotFound is returned when no record is stored under a key
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores JSON-encoded session records keyed by a fixed storage key
type SessionRepository struct {
	conn    *sql.DB
	dialect db.Dialect
	logger  *zap.SugaredLogger
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(conn *sql.DB, dialect db.Dialect, logger *zap.SugaredLogger) *SessionRepository {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &SessionRepository{conn: conn, dialect: dialect, logger: logger}
}

// Ensure SessionRepository implements SessionRepositoryInterface
var _ SessionRepositoryInterface = (*SessionRepository)(nil)

// EnsureSchema creates the sessions table if it does not exist
func (r *SessionRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS sessions (
			session_key TEXT PRIMARY KEY,
			record TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`
	if _, err := r.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}
	return nil
}

// Save upserts the record under key
func (r *SessionRepository) Save(ctx context.Context, key string, record models.SessionRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	query := r.rebind(`
		INSERT INTO sessions (session_key, record, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (session_key) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at
	`)
	updatedAt := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := r.conn.ExecContext(ctx, query, key, string(payload), updatedAt); err != nil {
		r.logger.Errorf("❌ Save: Error storing session %q: %v", key, err)
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.logger.Debugf("✅ Save: Stored session %q for %s", key, record.Email)
	return nil
}

// Load reads the record stored under key. It returns ErrSessionNotFound when absent.
func (r *SessionRepository) Load(ctx context.Context, key string) (*models.SessionRecord, error) {
	query := r.rebind(`SELECT record FROM sessions WHERE session_key = ?`)

	var payload string
	err := r.conn.QueryRowContext(ctx, query, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var record models.SessionRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("failed to decode session %q: %w", key, err)
	}
	return &record, nil
}

// Delete removes the record under key. Deleting an absent key is not an error.
func (r *SessionRepository) Delete(ctx context.Context, key string) error {
	query := r.rebind(`DELETE FROM sessions WHERE session_key = ?`)
	if _, err := r.conn.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// rebind rewrites ? placeholders to $n for postgres
func (r *SessionRepository) rebind(query string) string {
	if r.dialect != db.DialectPostgres {
		return query
	}
	out := make([]byte, 0, len(query)+8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, fmt.Sprintf("$%d", n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}

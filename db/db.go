package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"gemrock-store/config"
)

// Dialect identifies the SQL flavour behind a connection
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// DB holds the database connection
var DB *sql.DB

// InitDB opens the session store selected by SESSION_STORE and keeps it in DB
func InitDB(ctx context.Context, cfg config.Config) (Dialect, error) {
	var (
		conn    *sql.DB
		dialect Dialect
		err     error
	)

	switch cfg.SessionStore {
	case config.SessionStorePostgres:
		dsn, dsnErr := cfg.Database.PostgresDSN()
		if dsnErr != nil {
			return "", dsnErr
		}
		conn, err = OpenPostgres(ctx, dsn)
		dialect = DialectPostgres
	default:
		conn, err = OpenSQLite(ctx, cfg.SQLitePath)
		dialect = DialectSQLite
	}
	if err != nil {
		return "", err
	}

	DB = conn
	return dialect, nil
}

// OpenPostgres opens a postgres connection through the pgx stdlib driver
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// OpenSQLite opens (or creates) a sqlite database file. ":memory:" gives a private
// in-memory database.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := path
	if path != ":memory:" {
		cleanPath := filepath.Clean(path)
		if dir := filepath.Dir(cleanPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		dsn = cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// a single connection keeps an in-memory database shared and serializes writers
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return conn, nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Data source modes for the admin dashboard
const (
	DataSourceStub         = "stub"
	DataSourceLive         = "live"
	DataSourceLiveFallback = "live-fallback"
)

// Session store backends
const (
	SessionStoreSQLite   = "sqlite"
	SessionStorePostgres = "postgres"
)

// Config holds every runtime setting of the service, read from the environment
type Config struct {
	Env            string `env:"ENV" envDefault:"development"`
	Port           string `env:"PORT" envDefault:"8080"`
	BaseURL        string `env:"BASE_URL"` // defaults to http://localhost:<PORT>
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`

	APIURL     string        `env:"API_URL" envDefault:"http://localhost:5000/api/v1"`
	DataSource string        `env:"DATA_SOURCE" envDefault:"live-fallback"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	AdminEmail         string        `env:"ADMIN_EMAIL" envDefault:"admin@gmail.com"`
	AdminPassword      string        `env:"ADMIN_PASSWORD" envDefault:"123456"`
	SuperAdminEmail    string        `env:"SUPER_ADMIN_EMAIL" envDefault:"superadmin@gmail.com"`
	SuperAdminPassword string        `env:"SUPER_ADMIN_PASSWORD" envDefault:"superpassword123"`
	AuthDelay          time.Duration `env:"AUTH_DELAY" envDefault:"1s"`
	CheckoutDelay      time.Duration `env:"CHECKOUT_DELAY" envDefault:"1500ms"`
	SessionKey         string        `env:"SESSION_KEY" envDefault:"user"`

	SessionStore string `env:"SESSION_STORE" envDefault:"sqlite"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"data/session.db"`
	Database     DatabaseConfig

	JWTSecret string        `env:"JWT_SECRET" envDefault:"gemrock-dev-secret"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	ImageCacheDir string `env:"IMAGE_CACHE_DIR" envDefault:"cache/images"`
	ChromePath    string `env:"CHROME_PATH"`
}

// DatabaseConfig holds the postgres connection settings
type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// Load parses the environment into a Config and validates it
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.DataSource = strings.ToLower(strings.TrimSpace(c.DataSource))
	switch c.DataSource {
	case DataSourceStub, DataSourceLive, DataSourceLiveFallback:
	default:
		return fmt.Errorf("invalid DATA_SOURCE %q: use stub, live or live-fallback", c.DataSource)
	}

	c.SessionStore = strings.ToLower(strings.TrimSpace(c.SessionStore))
	switch c.SessionStore {
	case SessionStoreSQLite, SessionStorePostgres:
	default:
		return fmt.Errorf("invalid SESSION_STORE %q: use sqlite or postgres", c.SessionStore)
	}

	if _, err := url.ParseRequestURI(c.APIURL); err != nil {
		return fmt.Errorf("invalid API_URL %q: %w", c.APIURL, err)
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")

	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:" + c.Port
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if c.SessionKey == "" {
		return fmt.Errorf("SESSION_KEY cannot be empty")
	}
	if c.AuthDelay < 0 || c.CheckoutDelay < 0 {
		return fmt.Errorf("AUTH_DELAY and CHECKOUT_DELAY cannot be negative")
	}
	return nil
}

// IsProduction reports whether ENV is production
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// PostgresDSN returns DATABASE_URL or a DSN built from the DB_* settings
func (d DatabaseConfig) PostgresDSN() (string, error) {
	if d.URL != "" {
		return d.URL, nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode), nil
}

package db

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ai-solution/site-backend/pkg/env"
)

type Config struct {
	URL            string
	Host           string
	Port           string
	Database       string
	User           string
	Password       string
	SSLMode        string
	MaxConns       int
	ConnectTimeout time.Duration
	IdleTimeout    time.Duration
}

func NewConfig() Config {
	return Config{
		URL:            os.Getenv("DATABASE_URL"),
		Host:           env.GetEnv("PGHOST", "localhost"),
		Port:           env.GetEnv("PGPORT", "5432"),
		Database:       env.GetEnv("PGDATABASE", "ai_solutions_db"),
		User:           env.GetEnv("PGUSER", "ai_user"),
		Password:       os.Getenv("PGPASSWORD"),
		SSLMode:        env.GetEnv("PGSSLMODE", "disable"),
		MaxConns:       env.GetEnvInt("PG_MAX_CONNS", 5),
		ConnectTimeout: time.Duration(env.GetEnvInt("PG_CONNECT_TIMEOUT_SECS", 10)) * time.Second,
		IdleTimeout:    time.Duration(env.GetEnvInt("PG_IDLE_TIMEOUT_SECS", 300)) * time.Second,
	}
}

// GetDSN prefers DATABASE_URL and falls back to the discrete PG* fields.
// The pool is sized small, the target deployment is managed Postgres with a
// constrained connection count.
func (c Config) GetDSN() string {
	if c.URL != "" {
		dsn := withQuery(c.URL, "sslmode", c.SSLMode)
		return withQuery(dsn, "pool_max_conns", fmt.Sprintf("%d", c.MaxConns))
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&pool_max_conns=%d&connect_timeout=%d&pool_max_conn_idle_time=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.Database,
		c.SSLMode, c.MaxConns, int(c.ConnectTimeout.Seconds()), c.IdleTimeout,
	)
}

func withQuery(dsn, key, value string) string {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return dsn
	}
	q := parsed.Query()
	if q.Get(key) == "" {
		q.Set(key, value)
	}
	parsed.RawQuery = q.Encode()
	return parsed.String()
}

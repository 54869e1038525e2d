package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ai-solution/site-backend/pkg/env"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// schema is applied on every start. Statements are idempotent so re-running
// the bootstrap any number of times is safe.
const schema = `
CREATE TABLE IF NOT EXISTS admins (
  id BIGSERIAL PRIMARY KEY,
  email TEXT UNIQUE NOT NULL,
  password_hash TEXT NOT NULL,
  otp_code TEXT,
  otp_expires_at TIMESTAMPTZ,
  otp_attempts INT NOT NULL DEFAULT 0,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
ALTER TABLE admins ADD COLUMN IF NOT EXISTS otp_attempts INT NOT NULL DEFAULT 0;

CREATE TABLE IF NOT EXISTS customer_inquiries (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT,
  company TEXT,
  country TEXT,
  job_title TEXT,
  job_details TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'new',
  submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS articles (
  id BIGSERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  slug TEXT UNIQUE NOT NULL,
  excerpt TEXT,
  content TEXT,
  author TEXT,
  category TEXT,
  tags TEXT[] NOT NULL DEFAULT '{}',
  read_time INT,
  views INT NOT NULL DEFAULT 0,
  featured BOOLEAN NOT NULL DEFAULT FALSE,
  image_url TEXT,
  published_at TIMESTAMPTZ,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS events (
  id BIGSERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT,
  date DATE NOT NULL,
  time_range TEXT,
  location TEXT,
  type TEXT NOT NULL,
  status TEXT NOT NULL,
  attendees INT NOT NULL DEFAULT 0,
  max_attendees INT,
  featured BOOLEAN NOT NULL DEFAULT FALSE,
  image_url TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS feedback (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  company TEXT,
  project TEXT,
  rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
  comment TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS gallery_images (
  id BIGSERIAL PRIMARY KEY,
  filename TEXT,
  url TEXT NOT NULL,
  caption TEXT,
  uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate applies the schema and seeds the single admin identity in one
// transaction, rolled back as a whole on any failure.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("can't begin migration tx, %v", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, schema); err != nil {
		return fmt.Errorf("err applying schema, %v", err)
	}

	email := strings.ToLower(env.GetEnv("ADMIN_EMAIL", "admin@example.com"))
	password := env.GetEnv("ADMIN_PASSWORD", "Admin@123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("err hashing admin password, %v", err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO admins (email, password_hash) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash`,
		email, string(hash))
	if err != nil {
		return fmt.Errorf("err seeding admin, %v", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("err committing migration, %v", err)
	}

	slog.Info("migrations applied", "admin", email)
	return nil
}

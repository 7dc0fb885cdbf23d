// Package store persists projects, certificates, talks, contact messages and
// visitor metrics in SQLite (default) or MySQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/Zachkp/portfolio/internal/config"
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps the database handle.
type Store struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// Open connects to the configured database.
func Open(cfg config.Database) (*Store, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "sqlite"
	}
	if driver != "sqlite" && driver != "mysql" {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == "sqlite" {
		// one writer at a time; the background visitor inserts would
		// otherwise hit SQLITE_BUSY
		db.SetMaxOpenConns(1)
	} else {
		db.SetConnMaxLifetime(1 * time.Hour)
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
	}

	return New(db, driver), nil
}

// New wraps an existing handle.
func New(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id VARCHAR(64) PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		tech_stack TEXT NOT NULL,
		image_url TEXT NOT NULL,
		github_url TEXT,
		demo_url TEXT,
		category VARCHAR(128) NOT NULL,
		featured BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS certificates (
		id VARCHAR(64) PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		issuer TEXT NOT NULL,
		date VARCHAR(64) NOT NULL,
		image_url TEXT NOT NULL,
		credential_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS talks (
		id VARCHAR(64) PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		event_name TEXT NOT NULL,
		date VARCHAR(64) NOT NULL,
		description TEXT NOT NULL,
		image_url TEXT NOT NULL,
		video_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id VARCHAR(64) PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS visitors (
		id VARCHAR(64) PRIMARY KEY,
		hashed_ip VARCHAR(64) NOT NULL,
		user_agent TEXT,
		path TEXT,
		visited_at DATETIME NOT NULL
	)`,
}

// Migrate creates missing tables.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *Store) count(ctx context.Context, table string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

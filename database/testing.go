package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	testDB *DB
)

// GetTestDB returns the shared test database connection. Available after
// TestMain has run and SetupTestDB succeeded.
func GetTestDB() *DB {
	return testDB
}

// SetupTestDB creates a test database connection and runs migrations.
// Should be called once in TestMain, not in individual tests.
func SetupTestDB(dbURL string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := runTestMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runTestMigrations(db *DB) error {
	ctx := context.Background()

	migrations := []string{
		`
		CREATE TABLE IF NOT EXISTS projects (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_projects_name ON projects (name);
		`,
		`
		CREATE TABLE IF NOT EXISTS apartments (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			unit_number TEXT NOT NULL,
			price NUMERIC(14,2) NOT NULL CHECK (price >= 0),
			bedrooms INT NOT NULL CHECK (bedrooms >= 0),
			bathrooms INT NOT NULL CHECK (bathrooms >= 0),
			area NUMERIC(10,2) NOT NULL CHECK (area >= 0),
			project_id BIGINT NOT NULL REFERENCES projects(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_apartments_created_at ON apartments (created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_apartments_project_id ON apartments (project_id);
		`,
		`
		CREATE TABLE IF NOT EXISTS images (
			id BIGSERIAL PRIMARY KEY,
			url TEXT NOT NULL,
			apartment_id BIGINT NOT NULL REFERENCES apartments(id) ON DELETE CASCADE
		);
		CREATE INDEX IF NOT EXISTS idx_images_apartment_id ON images (apartment_id);
		`,
	}

	for _, migration := range migrations {
		_, err := db.Pool.Exec(ctx, migration)
		if err != nil {
			return err
		}
	}

	return nil
}

// CleanupTestDB truncates all tables for a fresh test state. Call this at
// the start of each integration test.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, "TRUNCATE TABLE images, apartments, projects RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

// TeardownTestDB closes the test database connection. Safe to call with a
// nil DB.
func TeardownTestDB(db *DB) {
	if db != nil {
		db.Close()
	}
}

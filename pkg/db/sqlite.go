package db

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Register "sqlite" driver
)

// OpenSQLite opens a file-backed SQLite database and applies migrations.
// A "sqlite://" or "file:" prefix on path is accepted and stripped.
func OpenSQLite(path string) (*sql.DB, error) {
	path = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(path), "sqlite://"), "file:")
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY churn
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := RunSQLiteMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

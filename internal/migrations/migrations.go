// Package migrations applies the embedded sqlite schema for the local token
// database.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

const migrationsDir = "sql"

//go:embed sql/*.sql
var migrationsFS embed.FS

// Apply runs every migration not yet recorded in schema_migrations, each in
// its own transaction.
func Apply(ctx context.Context, db *sql.DB) error {
	if err := createHistoryTable(ctx, db); err != nil {
		return err
	}

	files, err := migrationFiles()
	if err != nil {
		return err
	}

	for _, filename := range files {
		applied, err := isMigrationApplied(ctx, db, filename)
		if err != nil {
			return err
		}
		if applied {
			continue
		}
		if err := applyFile(ctx, db, filename); err != nil {
			return err
		}
	}

	return nil
}

func migrationFiles() ([]string, error) {
	entries, err := fs.ReadDir(migrationsFS, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

func applyFile(ctx context.Context, db *sql.DB, filename string) error {
	content, err := fs.ReadFile(migrationsFS, migrationsDir+"/"+filename)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", filename, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %s: %w", filename, err)
	}
	defer func() { _ = tx.Rollback() }()

	for stmt := range strings.SplitSeq(string(content), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filename, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (name) VALUES (?)", filename); err != nil {
		return fmt.Errorf("recording migration %s: %w", filename, err)
	}

	return tx.Commit()
}

func createHistoryTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}
	return nil
}

func isMigrationApplied(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations WHERE name = ?", name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking if migration applied: %w", err)
	}
	return count > 0, nil
}

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "moves.db"))
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := t.Context()
	for i := range 2 {
		if err := Apply(ctx, db); err != nil {
			t.Fatalf("Apply() run %d error = %v", i+1, err)
		}
	}

	files, err := migrationFiles()
	if err != nil {
		t.Fatalf("migrationFiles() error = %v", err)
	}

	var recorded int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&recorded); err != nil {
		t.Fatalf("counting migrations: %v", err)
	}
	if recorded != len(files) {
		t.Errorf("recorded %d migrations, want %d", recorded, len(files))
	}

	if _, err := db.ExecContext(ctx,
		"INSERT INTO tokens (id, access_token, token_type, expiry) VALUES (1, 'a', 'bearer', CURRENT_TIMESTAMP)",
	); err != nil {
		t.Fatalf("tokens table not usable: %v", err)
	}
	if _, err := db.ExecContext(ctx,
		"INSERT INTO tokens (id, access_token, token_type, expiry) VALUES (2, 'b', 'bearer', CURRENT_TIMESTAMP)",
	); err == nil {
		t.Error("tokens accepted a second row, want single row constraint")
	}
}

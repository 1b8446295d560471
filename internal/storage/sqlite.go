package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/garrettladley/moves/internal/migrations"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/oauth2"
)

var _ TokenStore = (*SQLiteTokenStore)(nil)

type SQLiteTokenStore struct {
	db *sql.DB
}

func OpenSQLiteTokenStore(ctx context.Context, path string) (*SQLiteTokenStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteTokenStore{db: db}, nil
}

func (s *SQLiteTokenStore) Load(ctx context.Context) (*oauth2.Token, error) {
	var (
		token        oauth2.Token
		refreshToken sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT access_token, token_type, refresh_token, expiry FROM tokens WHERE id = 1",
	).Scan(&token.AccessToken, &token.TokenType, &refreshToken, &token.Expiry)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	token.RefreshToken = refreshToken.String
	return &token, nil
}

func (s *SQLiteTokenStore) Save(ctx context.Context, token *oauth2.Token) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tokens (id, access_token, token_type, refresh_token, expiry, updated_at)
		VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			access_token = excluded.access_token,
			token_type = excluded.token_type,
			refresh_token = excluded.refresh_token,
			expiry = excluded.expiry,
			updated_at = excluded.updated_at
	`, token.AccessToken, token.TokenType, nullString(token.RefreshToken), token.Expiry.UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert token: %w", err)
	}
	return nil
}

func (s *SQLiteTokenStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM tokens WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

func (s *SQLiteTokenStore) Close() error {
	return s.db.Close()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

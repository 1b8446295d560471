package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/garrettladley/moves/internal/migrations/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/oauth2"
)

var _ TokenStore = (*PostgresTokenStore)(nil)

type PostgresTokenStore struct {
	pool *pgxpool.Pool
}

func OpenPostgresTokenStore(ctx context.Context, url string) (*PostgresTokenStore, error) {
	if url == "" {
		return nil, errors.New("postgres url is required")
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	if err := postgres.Apply(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &PostgresTokenStore{pool: pool}, nil
}

func (s *PostgresTokenStore) Load(ctx context.Context) (*oauth2.Token, error) {
	var (
		token        oauth2.Token
		refreshToken *string
	)
	err := s.pool.QueryRow(ctx,
		"SELECT access_token, token_type, refresh_token, expiry FROM moves_tokens WHERE id = 1",
	).Scan(&token.AccessToken, &token.TokenType, &refreshToken, &token.Expiry)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	if refreshToken != nil {
		token.RefreshToken = *refreshToken
	}
	return &token, nil
}

func (s *PostgresTokenStore) Save(ctx context.Context, token *oauth2.Token) error {
	var refreshToken *string
	if token.RefreshToken != "" {
		refreshToken = &token.RefreshToken
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO moves_tokens (id, access_token, token_type, refresh_token, expiry, updated_at)
		VALUES (1, $1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			token_type = EXCLUDED.token_type,
			refresh_token = EXCLUDED.refresh_token,
			expiry = EXCLUDED.expiry,
			updated_at = EXCLUDED.updated_at
	`, token.AccessToken, token.TokenType, refreshToken, token.Expiry)
	if err != nil {
		return fmt.Errorf("failed to upsert token: %w", err)
	}
	return nil
}

func (s *PostgresTokenStore) Delete(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM moves_tokens WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

func (s *PostgresTokenStore) Close() error {
	s.pool.Close()
	return nil
}

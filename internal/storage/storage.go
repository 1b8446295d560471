package storage

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
)

var ErrNotFound = errors.New("token not found")

// TokenStore holds the single token of the local user.
type TokenStore interface {
	// Load returns ErrNotFound when no token has been saved.
	Load(ctx context.Context) (*oauth2.Token, error)
	Save(ctx context.Context, token *oauth2.Token) error
	Delete(ctx context.Context) error
	Close() error
}

type Kind string

const (
	KindMemory   Kind = "memory"
	KindSQLite   Kind = "sqlite"
	KindRedis    Kind = "redis"
	KindPostgres Kind = "postgres"
)

func (k Kind) String() string { return string(k) }

type Options struct {
	Kind        Kind
	SQLitePath  string
	RedisURL    string
	RedisKey    string
	PostgresURL string
}

func Open(ctx context.Context, opts Options) (TokenStore, error) {
	switch opts.Kind {
	case KindMemory:
		return NewMemoryTokenStore(), nil
	case KindSQLite, "":
		return OpenSQLiteTokenStore(ctx, opts.SQLitePath)
	case KindRedis:
		return OpenRedisTokenStore(ctx, opts.RedisURL, opts.RedisKey)
	case KindPostgres:
		return OpenPostgresTokenStore(ctx, opts.PostgresURL)
	default:
		return nil, fmt.Errorf("unknown token store %q (valid: memory, sqlite, redis, postgres)", opts.Kind)
	}
}

func copyToken(t *oauth2.Token) *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		Expiry:       t.Expiry,
	}
}

package storage

import (
	"context"
	"errors"
	"fmt"

	xredis "github.com/garrettladley/moves/internal/redis"
	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
)

const defaultRedisKey = "moves:token"

var _ TokenStore = (*RedisTokenStore)(nil)

// RedisTokenStore keeps the token as JSON under a single key without a TTL;
// expiry is the token's concern, not the store's.
type RedisTokenStore struct {
	client *redis.Client
	key    string
}

func NewRedisTokenStore(client *redis.Client, key string) *RedisTokenStore {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisTokenStore{client: client, key: key}
}

func OpenRedisTokenStore(ctx context.Context, url string, key string) (*RedisTokenStore, error) {
	if url == "" {
		return nil, errors.New("redis url is required")
	}
	client, err := xredis.New(ctx, xredis.Config{URL: url})
	if err != nil {
		return nil, err
	}
	return NewRedisTokenStore(client, key), nil
}

func (s *RedisTokenStore) Load(ctx context.Context) (*oauth2.Token, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	var token oauth2.Token
	if err := go_json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}
	return &token, nil
}

func (s *RedisTokenStore) Save(ctx context.Context, token *oauth2.Token) error {
	data, err := go_json.Marshal(copyToken(token))
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Close() error {
	return s.client.Close()
}

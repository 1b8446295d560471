package storage

import (
	"context"
	"sync"

	"golang.org/x/oauth2"
)

var _ TokenStore = (*MemoryTokenStore)(nil)

type MemoryTokenStore struct {
	mu    sync.RWMutex
	token *oauth2.Token
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load(_ context.Context) (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == nil {
		return nil, ErrNotFound
	}
	return copyToken(s.token), nil
}

func (s *MemoryTokenStore) Save(_ context.Context, token *oauth2.Token) error {
	s.mu.Lock()
	s.token = copyToken(token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryTokenStore) Delete(_ context.Context) error {
	s.mu.Lock()
	s.token = nil
	s.mu.Unlock()
	return nil
}

func (s *MemoryTokenStore) Close() error { return nil }

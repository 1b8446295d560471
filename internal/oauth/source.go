package oauth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/garrettladley/moves/internal/storage"
	"github.com/garrettladley/moves/pkg/moves"
	"golang.org/x/oauth2"
)

const loadTimeout = 10 * time.Second

// Refresher exchanges a refresh token. *moves.Client satisfies it.
type Refresher interface {
	RefreshToken(ctx context.Context, token string) (*moves.Response, error)
}

type TokenChecker interface {
	HasToken(ctx context.Context) (bool, error)
}

var (
	_ TokenChecker       = (*StoreTokenSource)(nil)
	_ oauth2.TokenSource = (*StoreTokenSource)(nil)
	_ Refresher          = (*moves.Client)(nil)
)

// StoreTokenSource serves the stored token, refreshing and persisting it
// once it expires.
type StoreTokenSource struct {
	refresher Refresher
	store     storage.TokenStore
	mu        sync.Mutex
	token     *oauth2.Token
}

func NewStoreTokenSource(refresher Refresher, store storage.TokenStore) *StoreTokenSource {
	return &StoreTokenSource{
		refresher: refresher,
		store:     store,
	}
}

func (s *StoreTokenSource) Token() (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	return s.TokenContext(ctx)
}

func (s *StoreTokenSource) TokenContext(ctx context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != nil && s.token.Valid() {
		return s.token, nil
	}

	token, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoToken
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	if token.Valid() {
		s.token = token
		return token, nil
	}

	if token.RefreshToken == "" {
		return nil, ErrTokenExpired
	}

	newToken, err := s.refresh(ctx, token.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	s.token = newToken
	return newToken, nil
}

// Refresh forces a refresh regardless of the stored token's expiry.
func (s *StoreTokenSource) Refresh(ctx context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoToken
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	if token.RefreshToken == "" {
		return nil, ErrTokenExpired
	}

	newToken, err := s.refresh(ctx, token.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	s.token = newToken
	return newToken, nil
}

func (s *StoreTokenSource) refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	resp, err := s.refresher.RefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	token, err := DecodeToken(resp)
	if err != nil {
		return nil, err
	}
	// keep the old refresh token when the provider does not rotate it
	if token.RefreshToken == "" {
		token.RefreshToken = refreshToken
	}

	if err := s.store.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to save refreshed token: %w", err)
	}
	return token, nil
}

func (s *StoreTokenSource) HasToken(ctx context.Context) (bool, error) {
	_, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get token: %w", err)
	}
	return true, nil
}

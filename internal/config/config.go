package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/garrettladley/moves/internal/paths"
	"github.com/garrettladley/moves/internal/storage"
	"github.com/garrettladley/moves/internal/xslog"
	"github.com/garrettladley/moves/pkg/moves"
)

type Config struct {
	Moves       Moves         `envPrefix:"MOVES_"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	LogLevel    xslog.Level   `env:"LOG_LEVEL" envDefault:"info"`
	TokenStore  TokenStore
}

// Moves mirrors moves.Config. Empty endpoint fields keep the client defaults.
type Moves struct {
	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	RedirectURI  string   `env:"REDIRECT_URI"`
	OAuthBase    string   `env:"OAUTH_BASE"`
	APIBase      string   `env:"API_BASE"`
	AuthorizeURL string   `env:"AUTHORIZE_URL"`
	Scopes       []string `env:"SCOPES" envSeparator:" " envDefault:"activity location"`
}

type TokenStore struct {
	Kind        storage.Kind `env:"TOKEN_STORE" envDefault:"sqlite"`
	SQLitePath  string       `env:"SQLITE_PATH"`
	RedisURL    string       `env:"REDIS_URL"`
	RedisKey    string       `env:"REDIS_KEY" envDefault:"moves:token"`
	PostgresURL string       `env:"POSTGRES_URL"`
}

func (m Moves) ClientConfig() moves.Config {
	return moves.Config{
		OAuthBase:    m.OAuthBase,
		APIBase:      m.APIBase,
		AuthorizeURL: m.AuthorizeURL,
		ClientID:     m.ClientID,
		ClientSecret: m.ClientSecret,
		RedirectURI:  m.RedirectURI,
	}
}

// StorageOptions resolves the sqlite path under the config directory when
// none is set.
func (t TokenStore) StorageOptions() (storage.Options, error) {
	opts := storage.Options{
		Kind:        t.Kind,
		SQLitePath:  t.SQLitePath,
		RedisURL:    t.RedisURL,
		RedisKey:    t.RedisKey,
		PostgresURL: t.PostgresURL,
	}
	if opts.Kind == storage.KindSQLite && opts.SQLitePath == "" {
		if _, err := paths.EnsureDir(); err != nil {
			return storage.Options{}, err
		}
		path, err := paths.DB()
		if err != nil {
			return storage.Options{}, err
		}
		opts.SQLitePath = path
	}
	return opts, nil
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Package paths locates the per-user files of the moves CLI.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName = "moves"
	dbFile  = "moves.db"
	envFile = ".env"
)

// Dir is $XDG_CONFIG_HOME/moves, or ~/.config/moves when unset.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName), nil
}

// EnsureDir creates Dir with owner-only permissions since it holds tokens.
func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return dir, nil
}

func DB() (string, error) {
	return file(dbFile)
}

// EnvFile is the user level dotenv file, read after the working
// directory's .env.
func EnvFile() (string, error) {
	return file(envFile)
}

func file(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

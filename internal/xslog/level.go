package xslog

import (
	"encoding"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type Level string

var (
	_ fmt.Stringer             = (*Level)(nil)
	_ encoding.TextUnmarshaler = (*Level)(nil)
)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

const Default = LevelInfo

func Parse(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelDebug:
		return LevelDebug, nil
	case LevelInfo:
		return LevelInfo, nil
	case LevelWarn:
		return LevelWarn, nil
	case LevelError:
		return LevelError, nil
	default:
		return "", fmt.Errorf("invalid log level: %q (valid: debug, info, warn, error)", s)
	}
}

// UnmarshalText lets env decoding fill a Level directly. Empty input
// yields Default.
func (l *Level) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*l = Default
		return nil
	}
	level, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

func (l Level) ToSlog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l Level) String() string {
	return string(l)
}

func NewLogger(w io.Writer, level Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level.ToSlog(),
	})).With(Version())
}

package logger

import (
	"log/slog"
	"os"

	"github.com/14kear/sso-prettyslog/slogpretty/slogpretty"
)

const (
	EnvLocal = "local"
)

// New returns the process logger: a pretty handler for local runs and JSON
// everywhere else.
func New(env string, level string) *slog.Logger {
	lvl := ParseLevel(level)

	switch env {
	case EnvLocal:
		return newPretty(lvl)
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	}
}

// ParseLevel falls back to info for unknown levels.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func newPretty(level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}
	return slog.New(opts.NewPrettyHandler(os.Stdout))
}

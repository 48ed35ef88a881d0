package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_RespectsLevel(t *testing.T) {
	log := New("prod", "warn")

	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))
}

func TestNew_Local(t *testing.T) {
	assert.NotNil(t, New(EnvLocal, "debug"))
}

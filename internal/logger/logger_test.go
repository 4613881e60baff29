package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithValidConfig(t *testing.T) {
	log, err := New(Config{Level: "info", Format: "text", Output: "stdout"})
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNewWithInvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "verbose", Format: "text", Output: "stdout"})
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNewWithInvalidFormat(t *testing.T) {
	_, err := New(Config{Level: "info", Format: "xml", Output: "stdout"})
	assert.ErrorContains(t, err, "invalid log format")
}

func TestNewWithFileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "mailtask.log")

	log, err := New(Config{Level: "debug", Format: "json", Output: logPath})
	require.NoError(t, err)

	log.Info("registered", Field{Key: "task", Value: "auto-reply-mail"})

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "auto-reply-mail")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"trace", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		level, valid := parseLevel(tt.input)
		assert.Equal(t, tt.want, level, "level for %q", tt.input)
		assert.Equal(t, tt.valid, valid, "validity for %q", tt.input)
	}
}

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.Disabled},
		{0, zerolog.Disabled},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{5, zerolog.DebugLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestNew_Verbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantInfo  bool
		wantDebug bool
	}{
		{"silent", 0, false, false},
		{"info", 1, true, false},
		{"debug", 2, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tt.verbosity)
			logger.Info().Msg("info line")
			logger.Debug().Msg("debug line")

			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info line")))
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
		})
	}
}

func TestNew_NilWriter(t *testing.T) {
	logger := New(nil, 3)
	assert.NotPanics(t, func() { logger.Info().Msg("dropped") })
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, 1)
	logger.Info().Str("move", "e2e4").Msg("played")

	out := buf.String()
	assert.Contains(t, out, "played")
	assert.Contains(t, out, "move=e2e4")
	assert.NotContains(t, out, "{")
}

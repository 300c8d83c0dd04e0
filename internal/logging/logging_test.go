package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		verbosity int
		quiet     bool
		want      zerolog.Level
	}{
		{"default warn level", 0, false, zerolog.WarnLevel},
		{"info level", 1, false, zerolog.InfoLevel},
		{"debug level", 2, false, zerolog.DebugLevel},
		{"trace level", 3, false, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 7, false, zerolog.TraceLevel},
		{"quiet wins", 2, true, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Level(tt.verbosity, tt.quiet))
		})
	}
}

// Setup replaces the package logger, so these tests run sequentially.

func TestSetup_ComponentLogger(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Setup(&buf, 0, false)

	log := For("parser")
	log.Info().Msg("hidden at warn level")
	log.Warn().Msg("input contains tabs")

	out := buf.String()
	assert.NotContains(t, out, "hidden at warn level")
	assert.Contains(t, out, "input contains tabs")
	assert.Contains(t, out, "component=parser")
	assert.NotContains(t, out, "\x1b[", "non-terminal output must not be colored")
}

func TestSetup_Verbose(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Setup(&buf, 2, false)

	LogDuration(For("build"), time.Now(), "assemble")
	assert.Contains(t, buf.String(), "operation=assemble")
}

func TestReset_Silences(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, 3, false)
	Reset()
	buf.Reset()

	log := For("parser")
	log.Error().Msg("dropped")
	assert.Empty(t, buf.String())
}

func TestIsTerminal_NonFile(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

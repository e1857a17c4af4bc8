package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv(EnvStateDir, "")
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, err := os.Stat(filepath.Join(tempDir, "fuga", "fuga.log"))
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	tests := []struct {
		name     string
		stateDir string
		xdgState string
		want     string
	}{
		{"fuga state dir wins", "/custom/fuga", "/custom/state", "/custom/fuga/fuga.log"},
		{"with XDG_STATE_HOME", "", "/custom/state", "/custom/state/fuga/fuga.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvStateDir, tt.stateDir)
			t.Setenv("XDG_STATE_HOME", tt.xdgState)

			assert.Equal(t, filepath.FromSlash(tt.want), getLogFilePath())
		})
	}

	t.Run("without overrides falls back to home", func(t *testing.T) {
		t.Setenv(EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", "")

		got := getLogFilePath()
		assert.Contains(t, filepath.ToSlash(got), ".local/state/fuga/fuga.log")
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("datastore")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"datastore"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestTrack(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := Track(logger, "copy", "/tmp/a.txt")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"copy"`)
	assert.Contains(t, out, `"path":"/tmp/a.txt"`)
	assert.Contains(t, out, `"duration"`)
}

func TestSetupLoggerReusesOpenFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvStateDir, dir)

	SetupLogger(0)
	first := logFile
	SetupLogger(1)

	assert.Same(t, first, logFile)
	assert.Equal(t, filepath.Join(dir, "fuga.log"), openPath)

	other := t.TempDir()
	t.Setenv(EnvStateDir, other)
	SetupLogger(0)
	assert.Equal(t, filepath.Join(other, "fuga.log"), openPath)
}

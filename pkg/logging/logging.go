package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvStateDir overrides the directory that holds fuga.log
const EnvStateDir = "FUGA_STATE_DIR"

// levels maps the -v count to a level. Anything past the end is trace.
var levels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
}

var (
	fileMu   sync.Mutex
	logFile  *os.File
	openPath string
)

// SetupLogger sets the global level from the -v count and sends records to
// stderr and to the append-only log file. Repeated calls reuse the open
// file while its path is unchanged.
func SetupLogger(verbosity int) {
	level := zerolog.TraceLevel
	if verbosity >= 0 && verbosity < len(levels) {
		level = levels[verbosity]
	}
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}
	writers := []io.Writer{console}

	path := getLogFilePath()
	file, err := openLogFile(path)
	if err == nil {
		writers = append(writers, file)
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Log file unavailable, logging to stderr only")
	}
	log.Debug().Int("verbosity", verbosity).Str("log_file", path).Msg("Logger initialized")
}

// GetLogger returns a child of the global logger tagged with component.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Track logs the start of a filesystem operation on path and returns the
// function that logs its end.
func Track(logger zerolog.Logger, operation, path string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Str("path", path).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Str("path", path).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

// getLogFilePath resolves fuga.log: FUGA_STATE_DIR, then
// $XDG_STATE_HOME/fuga, then ~/.local/state/fuga.
func getLogFilePath() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return filepath.Join(dir, "fuga.log")
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "fuga.log"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "fuga", "fuga.log")
}

func openLogFile(path string) (*os.File, error) {
	fileMu.Lock()
	defer fileMu.Unlock()

	if logFile != nil && openPath == path {
		return logFile, nil
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile, openPath = nil, ""
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logFile, openPath = file, path
	return file, nil
}

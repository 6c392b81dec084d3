// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger owns the process-wide structured run log. Records are JSON
// lines appended to <dir>/svg2ai.log; until Setup succeeds they are dropped.
package logger

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const fileName = "svg2ai.log"

type Config struct {
	// Dir is the log directory. Empty disables the log.
	Dir   string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = slog.New(slog.DiscardHandler)
	logFile *os.File
	logPath string
	runID   string
)

// Setup opens the log file and installs a logger tagged with a fresh run id.
// The returned cleanup closes the file and restores the discarding logger.
func Setup(cfg Config) (func() error, error) {
	if cfg.Dir == "" {
		setDiscard()
		return func() error { return nil }, nil
	}

	dir := filepath.Clean(cfg.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		setDiscard()
		return nil, err
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		setDiscard()
		return nil, err
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	id := uuid.NewString()
	l := slog.New(h).With("run_id", id)

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	runID = id
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		runID = ""
		global = slog.New(slog.DiscardHandler)
		return cerr
	}
	return cleanup, nil
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path returns the log file path, or "" when logging is disabled.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

// RunID returns the id attached to every record of the current run.
func RunID() string {
	mu.RLock()
	defer mu.RUnlock()
	return runID
}

// IsReady reports an error when no log file is open.
func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil || logPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = slog.New(slog.DiscardHandler)
	logFile = nil
	logPath = ""
	runID = ""
}
